// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/club-access/internal/http/types"
	"github.com/canonical/club-access/internal/logging"
)

type API struct {
	gate *Gate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/gate", a.handleDecide)
}

// handleDecide answers with the current decision for ?path=, it does not wait
// for the pipeline to settle
func (a *API) handleDecide(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		types.WriteError(w, http.StatusBadRequest, "path is required")
		return
	}

	exempt, _ := strconv.ParseBool(r.URL.Query().Get("exempt"))

	sources, err := a.gate.locate(r)
	if err != nil {
		a.logger.Errorf("failed to locate access pipeline: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "access pipeline unavailable")
		return
	}

	d := a.gate.policy.Decide(
		Input{
			Session:     sources.Session.State(),
			Tenancy:     sources.Tenancy.State(),
			Entitlement: sources.Entitlement.View(),
			Path:        path,
			Exempt:      exempt,
		},
	)

	types.WriteJSON(w, http.StatusOK, d, "gate decision")
}

func NewAPI(gate *Gate, logger logging.LoggerInterface) *API {
	a := new(API)

	a.gate = gate
	a.logger = logger

	return a
}
