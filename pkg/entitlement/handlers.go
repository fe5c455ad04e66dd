// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

type Locator func(*http.Request) (*Evaluator, error)

type API struct {
	locate Locator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/entitlement", a.handleGet)
	mux.Post("/api/v0/entitlement/refresh", a.handleRefresh)
}

func (a *API) evaluator(w http.ResponseWriter, r *http.Request) (*Evaluator, bool) {
	e, err := a.locate(r)
	if err != nil {
		a.logger.Errorf("failed to locate entitlement evaluator: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "entitlement unavailable")
		return nil, false
	}

	return e, true
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	e, ok := a.evaluator(w, r)
	if !ok {
		return
	}

	types.WriteJSON(w, http.StatusOK, e.View(), "entitlement")
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.handleRefresh")
	defer span.End()

	e, ok := a.evaluator(w, r)
	if !ok {
		return
	}

	e.Refresh(ctx)

	types.WriteJSON(w, http.StatusOK, e.View(), "entitlement")
}

func NewAPI(locate Locator, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.locate = locate

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
