// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version}, "alive")
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	st := Status{Status: "ok", Version: version.Version, Dependencies: make(map[string]string)}
	code := http.StatusOK

	for _, name := range slices.Sorted(maps.Keys(a.dependencies)) {
		available := 1.0
		st.Dependencies[name] = "ok"

		if err := a.dependencies[name].Ping(ctx); err != nil {
			a.logger.Errorf("dependency %s is not reachable: %v", name, err)
			available = 0
			st.Dependencies[name] = "unavailable"
			st.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("failed to record availability of %s: %v", name, err)
		}
	}

	types.WriteJSON(w, code, st, st.Status)
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
