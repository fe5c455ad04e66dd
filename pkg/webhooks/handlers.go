// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/tracing"
)

type API struct {
	service  ServiceInterface
	guard    func(http.Handler) http.Handler
	basePath string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the hooks behind the caller guard
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route(a.basePath, func(r chi.Router) {
		if a.guard != nil {
			r.Use(a.guard)
		}
		r.Post("/registration", a.registration)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	var payload RegistrationPayload
	if err := types.DecodeAndValidate(r, &payload); err != nil {
		a.logger.Errorf("invalid registration hook payload: %v", err)
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := a.service.HandleRegistration(ctx, payload.Identity.ID, payload.Identity.Traits.Email)
	if errors.Is(err, ErrUnknownIdentity) {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to provision profile")
		return
	}

	types.WriteJSON(w, http.StatusOK, nil, "profile ready")
}

func NewAPI(service ServiceInterface, guard func(http.Handler) http.Handler, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.basePath = "/api/v0/hooks"

	a.tracer = tracer
	a.logger = logger

	return a
}
