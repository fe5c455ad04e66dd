// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/tenancy"
)

//go:generate mockgen -build_flags=--mod=mod -package entitlement -destination ./mock_interfaces.go -source=./interfaces.go

type fakeTenancy struct {
	v *observable.Value[tenancy.State]
}

func (f *fakeTenancy) State() tenancy.State {
	return f.v.Get()
}

func (f *fakeTenancy) Subscribe(fn func(tenancy.State)) func() {
	return f.v.Subscribe(fn)
}

func (f *fakeTenancy) settle(identityID, tenantID string) {
	st := tenancy.State{IdentityID: identityID, Tenants: []*types.Tenant{}}
	if tenantID != "" {
		t := &types.Tenant{ID: tenantID}
		st.Tenants = append(st.Tenants, t)
		st.Current = t
	}

	f.v.Set(st)
}

func newFakeTenancy() *fakeTenancy {
	return &fakeTenancy{v: observable.New(tenancy.State{Loading: true})}
}

func newTestEvaluator(src TenancySourceInterface, s StorageInterface) *Evaluator {
	return NewEvaluator(src, s, func() time.Time { return now }, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func awaitLoaded(t *testing.T, e *Evaluator) View {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := observable.Await(ctx, e.Observable(), func(st State) bool { return !st.Loading })
	require.NoError(t, err, "entitlement never settled")

	return e.View()
}

func TestEvaluatorLoadingWhileTenancyLoads(t *testing.T) {
	ctrl := gomock.NewController(t)

	e := newTestEvaluator(newFakeTenancy(), NewMockStorageInterface(ctrl))
	defer e.Close()

	v := e.View()
	assert.True(t, v.Loading)
	assert.Nil(t, v.Entitlement)
	assert.True(t, v.CanAccessApp)
}

func TestEvaluatorWithoutTenant(t *testing.T) {
	tests := []struct {
		name       string
		identityID string
	}{
		{name: "signed out"},
		{name: "identity without memberships", identityID: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			src := newFakeTenancy()
			e := newTestEvaluator(src, NewMockStorageInterface(ctrl))
			defer e.Close()

			src.settle(tt.identityID, "")

			v := e.View()
			assert.False(t, v.Loading)
			assert.Nil(t, v.Entitlement)
			assert.True(t, v.CanAccessApp)
		})
	}
}

func TestEvaluatorLoadsBilling(t *testing.T) {
	tests := []struct {
		name           string
		billing        *types.Billing
		err            error
		expectedStatus types.EntitlementStatus
		canAccess      bool
	}{
		{
			name:           "trial",
			billing:        &types.Billing{TenantID: "t1", CreatedAt: now.Add(-3 * day)},
			expectedStatus: types.StatusTrial,
			canAccess:      true,
		},
		{
			name:           "expired",
			billing:        &types.Billing{TenantID: "t1", CreatedAt: now.Add(-10 * day), SubscriptionStatus: strPtr("trial")},
			expectedStatus: types.StatusExpired,
			canAccess:      false,
		},
		{
			name:           "subscribed",
			billing:        &types.Billing{TenantID: "t1", CreatedAt: now.Add(-10 * day), SubscriptionStatus: strPtr("active"), SubscriptionPlan: strPtr("pro")},
			expectedStatus: types.StatusActive,
			canAccess:      true,
		},
		{
			name:      "fetch failure fails open",
			err:       errors.New("db down"),
			canAccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			s := NewMockStorageInterface(ctrl)
			s.EXPECT().GetTenantBilling(gomock.Any(), "t1").Return(tt.billing, tt.err)

			src := newFakeTenancy()
			e := newTestEvaluator(src, s)
			defer e.Close()

			src.settle("user-1", "t1")

			v := awaitLoaded(t, e)

			assert.Equal(t, tt.canAccess, v.CanAccessApp)
			if tt.err != nil {
				assert.Nil(t, v.Entitlement)
				return
			}

			require.NotNil(t, v.Entitlement)
			assert.Equal(t, tt.expectedStatus, v.Entitlement.Status)
		})
	}
}

func TestEvaluatorDiscardsBillingOfPreviousTenant(t *testing.T) {
	ctrl := gomock.NewController(t)

	release := make(chan struct{})
	started := make(chan struct{})

	s := NewMockStorageInterface(ctrl)
	s.EXPECT().GetTenantBilling(gomock.Any(), "t1").DoAndReturn(
		func(context.Context, string) (*types.Billing, error) {
			close(started)
			<-release
			return &types.Billing{TenantID: "t1", CreatedAt: now.Add(-10 * day)}, nil
		},
	)
	s.EXPECT().GetTenantBilling(gomock.Any(), "t2").Return(&types.Billing{TenantID: "t2", CreatedAt: now.Add(-day)}, nil)

	src := newFakeTenancy()
	e := newTestEvaluator(src, s)

	src.settle("user-1", "t1")
	<-started
	src.settle("user-1", "t2")

	awaitLoaded(t, e)
	close(release)
	e.Close()

	st := e.State()
	require.NotNil(t, st.Billing)
	assert.Equal(t, "t2", st.Billing.TenantID)
	assert.Equal(t, types.StatusTrial, e.Entitlement().Status)
}

func TestEvaluatorSignOutDuringFetch(t *testing.T) {
	ctrl := gomock.NewController(t)

	release := make(chan struct{})
	started := make(chan struct{})

	s := NewMockStorageInterface(ctrl)
	s.EXPECT().GetTenantBilling(gomock.Any(), "t1").DoAndReturn(
		func(context.Context, string) (*types.Billing, error) {
			close(started)
			<-release
			return &types.Billing{TenantID: "t1", CreatedAt: now}, nil
		},
	)

	src := newFakeTenancy()
	e := newTestEvaluator(src, s)

	src.settle("user-1", "t1")
	<-started
	src.settle("", "")

	close(release)
	e.Close()

	assert.Nil(t, e.State().Billing)
	assert.False(t, e.State().Loading)
}

func TestEvaluatorRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewMockStorageInterface(ctrl)
	gomock.InOrder(
		s.EXPECT().GetTenantBilling(gomock.Any(), "t1").Return(&types.Billing{TenantID: "t1", CreatedAt: now.Add(-10 * day)}, nil),
		s.EXPECT().GetTenantBilling(gomock.Any(), "t1").Return(&types.Billing{TenantID: "t1", CreatedAt: now.Add(-10 * day), SubscriptionStatus: strPtr("active"), SubscriptionPlan: strPtr("club")}, nil),
	)

	src := newFakeTenancy()
	e := newTestEvaluator(src, s)
	defer e.Close()

	src.settle("user-1", "t1")
	require.False(t, awaitLoaded(t, e).CanAccessApp)

	var sawLoading bool
	unsubscribe := e.Subscribe(func(st State) {
		if st.Loading {
			sawLoading = true
		}
	})
	defer unsubscribe()

	e.Refresh(context.Background())

	assert.False(t, sawLoading, "refresh went back to loading")
	assert.True(t, e.CanAccessApp())
	assert.Equal(t, types.StatusActive, e.Entitlement().Status)
}

func TestAPI_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := NewMockStorageInterface(ctrl)
	s.EXPECT().GetTenantBilling(gomock.Any(), "t1").Return(&types.Billing{TenantID: "t1", CreatedAt: now.Add(-3 * day)}, nil)

	src := newFakeTenancy()
	e := newTestEvaluator(src, s)
	defer e.Close()

	src.settle("user-1", "t1")
	awaitLoaded(t, e)

	mux := chi.NewMux()
	NewAPI(
		func(*http.Request) (*Evaluator, error) { return e, nil },
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/entitlement", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data View `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Data.Entitlement)
	assert.Equal(t, 4, resp.Data.Entitlement.TrialDaysRemaining)
	assert.True(t, resp.Data.CanAccessApp)
}
