// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

type Locator func(*http.Request) (PipelineInterface, error)

type SubscribeRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

type API struct {
	service ServiceInterface
	locate  Locator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/billing/plans", a.handlePlans)
	mux.Post("/api/v0/billing/subscription", a.handleSubscribe)
	mux.Delete("/api/v0/billing/subscription", a.handleCancel)
}

func (a *API) handlePlans(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, a.service.Plans(), "plans")
}

func (a *API) pipeline(w http.ResponseWriter, r *http.Request) (PipelineInterface, bool) {
	p, err := a.locate(r)
	if err != nil {
		a.logger.Errorf("failed to locate access pipeline: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "access pipeline unavailable")
		return nil, false
	}

	if p.IdentityID() == "" {
		types.WriteError(w, http.StatusUnauthorized, "sign in required")
		return nil, false
	}

	return p, true
}

func (a *API) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.handleSubscribe")
	defer span.End()

	var req SubscribeRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, ok := a.pipeline(w, r)
	if !ok {
		return
	}

	if err := a.service.UpdateSubscription(ctx, p.IdentityID(), p.CurrentTenantID(), req.PlanID); err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, p.RefreshBilling(ctx), "subscription updated")
}

func (a *API) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.handleCancel")
	defer span.End()

	p, ok := a.pipeline(w, r)
	if !ok {
		return
	}

	if err := a.service.CancelSubscription(ctx, p.IdentityID(), p.CurrentTenantID()); err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, p.RefreshBilling(ctx), "subscription cancelled")
}

func (a *API) writeOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownPlan), errors.Is(err, ErrNoTenant):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, err.Error())
	default:
		a.logger.Errorf("billing operation failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "billing operation failed")
	}
}

func NewAPI(service ServiceInterface, locate Locator, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.locate = locate

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
