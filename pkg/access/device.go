// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type deviceKeyCtx struct{}

type newDeviceCtx struct{}

type CookieConfig struct {
	Name     string
	Secure   bool
	Lifetime time.Duration
}

// DeviceMiddleware makes sure every request carries a device key, issuing a new
// cookie when the browser has none or sent a malformed one. Requests with a
// freshly issued key are marked, see IsNewDevice.
func DeviceMiddleware(cfg CookieConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := ""
			if c, err := r.Cookie(cfg.Name); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					key = c.Value
				}
			}

			if key == "" {
				key = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Name,
					Value:    key,
					Path:     "/",
					MaxAge:   int(cfg.Lifetime.Seconds()),
					Secure:   cfg.Secure,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				ctx = context.WithValue(ctx, newDeviceCtx{}, true)
			}

			next.ServeHTTP(w, r.WithContext(WithDeviceKey(ctx, key)))
		})
	}
}

func WithDeviceKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, deviceKeyCtx{}, key)
}

func DeviceKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(deviceKeyCtx{}).(string)
	return key, ok && key != ""
}

// IsNewDevice reports whether the device key was issued by this request
func IsNewDevice(ctx context.Context) bool {
	v, _ := ctx.Value(newDeviceCtx{}).(bool)
	return v
}
