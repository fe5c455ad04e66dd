// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/entitlement"
)

func TestAPI_Subscription(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		body         string
		setupMocks   func(*MockServiceInterface, *MockPipelineInterface)
		expectedCode int
	}{
		{
			name:   "subscribe refreshes entitlement",
			method: http.MethodPost,
			body:   `{"plan_id":"pro"}`,
			setupMocks: func(svc *MockServiceInterface, p *MockPipelineInterface) {
				p.EXPECT().IdentityID().Return("user-1").AnyTimes()
				p.EXPECT().CurrentTenantID().Return("t1")
				svc.EXPECT().UpdateSubscription(gomock.Any(), "user-1", "t1", "pro").Return(nil)
				p.EXPECT().RefreshBilling(gomock.Any()).Return(entitlement.View{
					Entitlement:  &types.EntitlementState{Status: types.StatusActive, HasActiveSubscription: true},
					CanAccessApp: true,
				})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "unknown plan",
			method: http.MethodPost,
			body:   `{"plan_id":"gold"}`,
			setupMocks: func(svc *MockServiceInterface, p *MockPipelineInterface) {
				p.EXPECT().IdentityID().Return("user-1").AnyTimes()
				p.EXPECT().CurrentTenantID().Return("t1")
				svc.EXPECT().UpdateSubscription(gomock.Any(), "user-1", "t1", "gold").Return(ErrUnknownPlan)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "member cannot subscribe",
			method: http.MethodPost,
			body:   `{"plan_id":"pro"}`,
			setupMocks: func(svc *MockServiceInterface, p *MockPipelineInterface) {
				p.EXPECT().IdentityID().Return("user-1").AnyTimes()
				p.EXPECT().CurrentTenantID().Return("t1")
				svc.EXPECT().UpdateSubscription(gomock.Any(), "user-1", "t1", "pro").Return(ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "signed out",
			method: http.MethodPost,
			body:   `{"plan_id":"pro"}`,
			setupMocks: func(svc *MockServiceInterface, p *MockPipelineInterface) {
				p.EXPECT().IdentityID().Return("")
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing plan",
			method:       http.MethodPost,
			body:         `{}`,
			setupMocks:   func(*MockServiceInterface, *MockPipelineInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "cancel",
			method: http.MethodDelete,
			setupMocks: func(svc *MockServiceInterface, p *MockPipelineInterface) {
				p.EXPECT().IdentityID().Return("user-1").AnyTimes()
				p.EXPECT().CurrentTenantID().Return("t1")
				svc.EXPECT().CancelSubscription(gomock.Any(), "user-1", "t1").Return(nil)
				p.EXPECT().RefreshBilling(gomock.Any()).Return(entitlement.View{CanAccessApp: true})
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			p := NewMockPipelineInterface(ctrl)
			tt.setupMocks(svc, p)

			mux := chi.NewMux()
			NewAPI(
				svc,
				func(*http.Request) (PipelineInterface, error) { return p, nil },
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test"),
				logging.NewNoopLogger(),
			).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/v0/billing/subscription", strings.NewReader(tt.body)))

			if w.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}
