// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDeviceMiddleware(t *testing.T) {
	existing := uuid.NewString()

	tests := []struct {
		name      string
		cookie    *http.Cookie
		expectNew bool
	}{
		{
			name:      "first visit",
			expectNew: true,
		},
		{
			name:   "known device",
			cookie: &http.Cookie{Name: "club_device", Value: existing},
		},
		{
			name:      "malformed cookie",
			cookie:    &http.Cookie{Name: "club_device", Value: "not-a-key"},
			expectNew: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				seen  string
				fresh bool
			)

			h := DeviceMiddleware(CookieConfig{Name: "club_device", Secure: true, Lifetime: time.Hour})(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					seen, _ = DeviceKeyFromContext(r.Context())
					fresh = IsNewDevice(r.Context())
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			cookies := w.Result().Cookies()

			if fresh != tt.expectNew {
				t.Errorf("expected new device %v, got %v", tt.expectNew, fresh)
			}

			if !tt.expectNew {
				if len(cookies) != 0 {
					t.Errorf("expected no new cookie, got %v", cookies)
				}
				if seen != existing {
					t.Errorf("expected device key %s, got %s", existing, seen)
				}
				return
			}

			if len(cookies) != 1 {
				t.Fatalf("expected one cookie, got %d", len(cookies))
			}

			c := cookies[0]
			if c.Value != seen {
				t.Errorf("cookie %s does not match context key %s", c.Value, seen)
			}
			if !c.HttpOnly || !c.Secure || c.MaxAge != 3600 {
				t.Errorf("unexpected cookie attributes %+v", c)
			}
		})
	}
}
