// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

// Locator returns the Store of the device behind the request
type Locator func(*http.Request) (*Store, error)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SignUpResponse struct {
	IdentityID           string `json:"identity_id"`
	ConfirmationRequired bool   `json:"confirmation_required"`
}

type API struct {
	locate Locator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/session", a.handleState)
	mux.Post("/api/v0/auth/sign-in", a.handleSignIn)
	mux.Post("/api/v0/auth/sign-up", a.handleSignUp)
	mux.Post("/api/v0/auth/sign-out", a.handleSignOut)
	mux.Post("/api/v0/auth/reset-password", a.handleResetPassword)
}

func (a *API) store(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	s, err := a.locate(r)
	if err != nil {
		a.logger.Errorf("failed to locate session store: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}

	return s, true
}

func (a *API) handleState(w http.ResponseWriter, r *http.Request) {
	s, ok := a.store(w, r)
	if !ok {
		return
	}

	types.WriteJSON(w, http.StatusOK, s.State(), "session state")
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleSignIn")
	defer span.End()

	var req SignInRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, ok := a.store(w, r)
	if !ok {
		return
	}

	if err := s.SignIn(ctx, req.Email, req.Password); err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, s.State(), "signed in")
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleSignUp")
	defer span.End()

	var req SignUpRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, ok := a.store(w, r)
	if !ok {
		return
	}

	identity, err := s.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		a.writeOperationError(w, err)
		return
	}

	state := s.State()
	confirm := state.Identity == nil || state.Identity.ID != identity.ID

	types.WriteJSON(
		w,
		http.StatusCreated,
		SignUpResponse{IdentityID: identity.ID, ConfirmationRequired: confirm},
		"signed up",
	)
}

func (a *API) handleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleSignOut")
	defer span.End()

	s, ok := a.store(w, r)
	if !ok {
		return
	}

	s.SignOut(ctx)

	types.WriteJSON(w, http.StatusOK, s.State(), "signed out")
}

func (a *API) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleResetPassword")
	defer span.End()

	var req ResetPasswordRequest
	if err := types.DecodeAndValidate(r, &req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, ok := a.store(w, r)
	if !ok {
		return
	}

	if err := s.ResetPassword(ctx, req.Email); err != nil {
		a.writeOperationError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusAccepted, nil, "password reset requested")
}

func (a *API) writeOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		types.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrIdentityExists):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("session operation failed: %v", err)
		types.WriteError(w, http.StatusBadGateway, "identity provider unavailable")
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
