// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/pkg/access"
	"github.com/canonical/club-access/pkg/billing"
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/metrics"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/status"
	"github.com/canonical/club-access/pkg/tenancy"
	"github.com/canonical/club-access/pkg/webhooks"
)

type Config struct {
	Registry     *access.Registry
	Billing      billing.ServiceInterface
	Hooks        webhooks.ServiceInterface
	HookGuard    func(http.Handler) http.Handler
	Dependencies map[string]status.PingerInterface

	Cookie         access.CookieConfig
	Policy         gate.Policy
	SettleTimeout  time.Duration
	AllowedOrigins []string
	WebRoot        string
}

func NewRouter(
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(cfg.Hooks, cfg.HookGuard, tracer, logger).RegisterEndpoints(router)

	// everything below belongs to a browser device
	app := chi.NewMux()
	app.Use(access.DeviceMiddleware(cfg.Cookie))

	reg := cfg.Registry
	g := gate.NewGate(cfg.Policy, reg.GateLocator(), cfg.SettleTimeout, tracer, monitor, logger)

	session.NewAPI(reg.SessionLocator(), tracer, monitor, logger).RegisterEndpoints(app)
	tenancy.NewAPI(reg.TenancyLocator(), tracer, monitor, logger).RegisterEndpoints(app)
	entitlement.NewAPI(reg.EntitlementLocator(), tracer, monitor, logger).RegisterEndpoints(app)
	billing.NewAPI(cfg.Billing, reg.BillingLocator(), tracer, monitor, logger).RegisterEndpoints(app)
	gate.NewAPI(g, logger).RegisterEndpoints(app)

	app.Handle("/api/*", http.NotFoundHandler())

	pages := pagesHandler(cfg.WebRoot)
	app.With(g.Middleware(true)).Get("/help", pages.ServeHTTP)
	app.With(g.Middleware(true)).Get("/help/*", pages.ServeHTTP)
	app.With(g.Middleware(false)).Get("/*", pages.ServeHTTP)

	router.Mount("/", app)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
