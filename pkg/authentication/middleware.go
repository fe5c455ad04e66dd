// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

type Middleware struct {
	verifier CallerVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireCaller rejects requests whose bearer token the verifier does not accept
func (m *Middleware) RequireCaller() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireCaller")
			defer span.End()

			caller, err := m.verifier.Verify(ctx, bearerToken(r.Header))
			if err != nil {
				m.logger.Debugf("hook caller rejected: %v", err)
				types.WriteError(w, http.StatusUnauthorized, "unauthorized caller")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, caller)))
		})
	}
}

// bearerToken only accepts the "Bearer <token>" form of RFC 6750
func bearerToken(headers http.Header) string {
	token, ok := strings.CutPrefix(headers.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}

func NewMiddleware(verifier CallerVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
