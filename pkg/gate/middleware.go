// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/tracing"
)

// Locator returns the pipeline stages of the device behind the request
type Locator func(*http.Request) (Sources, error)

type Gate struct {
	policy        Policy
	locate        Locator
	settleTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *Gate) Policy() Policy {
	return g.policy
}

// Middleware gates page routes. It waits up to the settle timeout for the
// pipeline to leave the loading state and answers 503 if it does not.
func (g *Gate) Middleware(exempt bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.policy.IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := g.tracer.Start(r.Context(), "gate.Gate.Middleware")
			defer span.End()

			sources, err := g.locate(r)
			if err != nil {
				g.logger.Errorf("failed to locate access pipeline: %v", err)
				types.WriteError(w, http.StatusInternalServerError, "access pipeline unavailable")
				return
			}

			d := g.settle(ctx, sources, r.URL.RequestURI(), exempt)

			if err := g.monitor.IncAccessDecision(map[string]string{"decision": string(d.Kind)}); err != nil {
				g.logger.Debugf("failed to record access decision: %v", err)
			}

			switch d.Kind {
			case ShowLoading:
				w.Header().Set("Retry-After", strconv.Itoa(1))
				types.WriteError(w, http.StatusServiceUnavailable, "access is still being resolved")
			case RedirectToSignIn, RedirectToBilling:
				http.Redirect(w, r, d.Location, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func (g *Gate) settle(ctx context.Context, sources Sources, path string, exempt bool) Decision {
	watcher := NewWatcher(g.policy, sources, path, exempt)
	defer watcher.Close()

	ctx, cancel := context.WithTimeout(ctx, g.settleTimeout)
	defer cancel()

	d, err := observable.Await(ctx, watcher.Observable(), func(d Decision) bool {
		return d.Kind != ShowLoading
	})
	if err != nil {
		return Decision{Kind: ShowLoading}
	}

	return d
}

func NewGate(policy Policy, locate Locator, settleTimeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	g := new(Gate)

	g.policy = policy
	g.locate = locate
	g.settleTimeout = settleTimeout

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
