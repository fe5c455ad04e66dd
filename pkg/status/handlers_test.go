// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Ready(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(db, cache *MockPingerInterface)
		expectedStatus int
		expectedCache  string
	}{
		{
			name: "all dependencies reachable",
			setupMocks: func(db, cache *MockPingerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				cache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedCache:  "ok",
		},
		{
			name: "cache down",
			setupMocks: func(db, cache *MockPingerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCache:  "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			db := NewMockPingerInterface(ctrl)
			cache := NewMockPingerInterface(ctrl)
			tt.setupMocks(db, cache)

			mux := chi.NewMux()
			NewAPI(
				map[string]PingerInterface{"database": db, "session_cache": cache},
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test"),
				logging.NewNoopLogger(),
			).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var body struct {
				Data Status `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Data.Dependencies["session_cache"] != tt.expectedCache {
				t.Errorf("expected cache %q, got %q", tt.expectedCache, body.Data.Dependencies["session_cache"])
			}
		})
	}
}

func TestAPI_Alive(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
