// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

type Locator func(*http.Request) (*Resolver, error)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"max=120"`
}

type SetCurrentTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

type API struct {
	locate Locator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tenants", a.handleList)
	mux.Post("/api/v0/tenants", a.handleCreate)
	mux.Put("/api/v0/tenants/current", a.handleSetCurrent)
	mux.Post("/api/v0/tenants/refresh", a.handleRefresh)
}

func (a *API) resolver(w http.ResponseWriter, r *http.Request) (*Resolver, bool) {
	res, err := a.locate(r)
	if err != nil {
		a.logger.Errorf("failed to locate tenancy resolver: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "tenancy unavailable")
		return nil, false
	}

	return res, true
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	res, ok := a.resolver(w, r)
	if !ok {
		return
	}

	types.WriteJSON(w, http.StatusOK, res.State(), "tenancy state")
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleCreate")
	defer span.End()

	var req CreateTenantRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, ok := a.resolver(w, r)
	if !ok {
		return
	}

	tenant, err := res.CreateTenant(ctx, req.Name)
	if err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, tenant, "tenant created")
}

func (a *API) handleSetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleSetCurrent")
	defer span.End()

	var req SetCurrentTenantRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, ok := a.resolver(w, r)
	if !ok {
		return
	}

	if err := res.SetCurrentTenant(ctx, req.TenantID); err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, res.State(), "current tenant updated")
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleRefresh")
	defer span.End()

	res, ok := a.resolver(w, r)
	if !ok {
		return
	}

	if err := res.Refresh(ctx); err != nil {
		a.logger.Errorf("failed to refresh tenants: %v", err)
	}

	types.WriteJSON(w, http.StatusOK, res.State(), "tenancy state")
}

func (a *API) writeOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		types.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotMember):
		types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrTenantExists):
		types.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("tenancy operation failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "tenancy operation failed")
	}
}

func NewAPI(locate Locator, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.locate = locate

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
