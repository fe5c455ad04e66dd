// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/club-access/internal/logging"
)

type API struct {
	handler http.Handler

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Handle("/api/v0/metrics", a.handler)
}

func NewAPI(logger logging.LoggerInterface) *API {
	a := new(API)

	a.handler = promhttp.Handler()
	a.logger = logger

	return a
}
