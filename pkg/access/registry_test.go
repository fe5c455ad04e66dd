// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/observable"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type mocks struct {
	idp        *session.MockIdentityProviderInterface
	privileges *session.MockPrivilegeCheckerInterface
	cache      *session.MockSessionCacheInterface
	storage    *MockStorageInterface
	authz      *tenancy.MockAuthorizerInterface
}

func newTestRegistry(t *testing.T, ttl time.Duration, setupMocks func(mocks)) *Registry {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		idp:        session.NewMockIdentityProviderInterface(ctrl),
		privileges: session.NewMockPrivilegeCheckerInterface(ctrl),
		cache:      session.NewMockSessionCacheInterface(ctrl),
		storage:    NewMockStorageInterface(ctrl),
		authz:      tenancy.NewMockAuthorizerInterface(ctrl),
	}
	setupMocks(m)

	r := NewRegistry(
		Dependencies{
			IdentityProvider: m.idp,
			Privileges:       m.privileges,
			SessionCache:     m.cache,
			Storage:          m.storage,
			Authorizer:       m.authz,
			Now:              func() time.Time { return now },
		},
		ttl,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)
	t.Cleanup(r.Close)

	return r
}

func signedOut(m mocks) {
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func awaitClosed(t *testing.T, p *Pipeline) {
	t.Helper()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline was not closed")
	}
}

func TestRegistry_GetReusesPipeline(t *testing.T) {
	r := newTestRegistry(t, time.Hour, func(m mocks) {
		m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(nil, nil).Times(1)
		m.cache.EXPECT().Get(gomock.Any(), "device-2").Return(nil, nil).Times(1)
	})

	first, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected the same pipeline for the same device")
	}

	other, err := r.Get(context.Background(), "device-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if other == first {
		t.Error("expected a separate pipeline per device")
	}

	if r.Len() != 2 {
		t.Errorf("expected 2 pipelines, got %d", r.Len())
	}
}

func TestRegistry_ConcurrentGetBuildsOnce(t *testing.T) {
	r := newTestRegistry(t, time.Hour, func(m mocks) {
		m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(nil, nil).Times(1)
	})

	const n = 16

	var wg sync.WaitGroup
	pipelines := make([]*Pipeline, n)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := r.Get(context.Background(), "device-1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			pipelines[i] = p
		}()
	}
	wg.Wait()

	for _, p := range pipelines[1:] {
		if p != pipelines[0] {
			t.Fatal("concurrent requests built more than one pipeline")
		}
	}
}

func TestRegistry_SignedInPipeline(t *testing.T) {
	created := now.Add(-2 * 24 * time.Hour)
	tenants := []*types.Tenant{
		{ID: "t1", Name: "Harbour Rowing", CreatedAt: created},
		{ID: "t2", Name: "Hill Runners", CreatedAt: created},
	}

	r := newTestRegistry(t, time.Hour, func(m mocks) {
		m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(&types.Session{
			Token:     "token",
			Identity:  types.Identity{ID: "user-1", Email: "coach@example.com"},
			ExpiresAt: now.Add(time.Hour),
		}, nil)
		m.privileges.EXPECT().GetUserRoleStatus(gomock.Any(), "user-1").Return(&types.RoleStatus{}, nil).AnyTimes()
		m.storage.EXPECT().ListTenantsByUserID(gomock.Any(), "user-1").Return(tenants, nil).AnyTimes()
		m.storage.EXPECT().GetCurrentTenantID(gomock.Any(), "user-1").Return("t2", nil).AnyTimes()
		m.storage.EXPECT().GetTenantBilling(gomock.Any(), "t2").Return(&types.Billing{TenantID: "t2", CreatedAt: created}, nil).AnyTimes()
	})

	p, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := gate.NewWatcher(gate.DefaultPolicy(), p.Sources(), "/athletes", false)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	d, err := observable.Await(ctx, w.Observable(), func(d gate.Decision) bool { return d.Kind != gate.ShowLoading })
	if err != nil {
		t.Fatalf("pipeline did not settle: %v", err)
	}

	if d.Kind != gate.Render {
		t.Errorf("expected render, got %s", d.Kind)
	}

	if p.IdentityID() != "user-1" {
		t.Errorf("expected user-1, got %q", p.IdentityID())
	}

	if p.CurrentTenantID() != "t2" {
		t.Errorf("expected t2, got %q", p.CurrentTenantID())
	}

	view := p.RefreshBilling(context.Background())
	if view.Loading || view.Entitlement == nil {
		t.Fatalf("expected a settled entitlement, got %+v", view)
	}

	if view.Entitlement.TrialDaysRemaining != 5 || !view.CanAccessApp {
		t.Errorf("unexpected entitlement %+v", view.Entitlement)
	}
}

func TestRegistry_IdleEvictionClosesPipeline(t *testing.T) {
	r := newTestRegistry(t, 50*time.Millisecond, signedOut)

	p, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	awaitClosed(t, p)

	next, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next == p {
		t.Error("expected a fresh pipeline after eviction")
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := newTestRegistry(t, time.Hour, signedOut)

	p, err := r.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Remove("device-1")
	awaitClosed(t, p)

	if r.Len() != 0 {
		t.Errorf("expected no pipelines, got %d", r.Len())
	}
}

func TestRegistry_Close(t *testing.T) {
	r := newTestRegistry(t, time.Hour, signedOut)

	var pipelines []*Pipeline
	for _, key := range []string{"device-1", "device-2"} {
		p, err := r.Get(context.Background(), key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pipelines = append(pipelines, p)
	}

	r.Close()

	for _, p := range pipelines {
		awaitClosed(t, p)
	}

	if _, err := r.Get(context.Background(), "device-1"); !errors.Is(err, ErrRegistryClosed) {
		t.Errorf("expected ErrRegistryClosed, got %v", err)
	}
}

func TestRegistry_LocatorWithoutDeviceKey(t *testing.T) {
	r := newTestRegistry(t, time.Hour, signedOut)

	req := httptest.NewRequest("GET", "/api/v0/session", nil)

	if _, err := r.SessionLocator()(req); !errors.Is(err, ErrNoDeviceKey) {
		t.Errorf("expected ErrNoDeviceKey, got %v", err)
	}

	if _, err := r.GateLocator()(req.WithContext(WithDeviceKey(req.Context(), "device-1"))); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegistry_GateLocatorBuildsOnlyForSessions(t *testing.T) {
	persisted := &types.Session{
		Token:     "token",
		Identity:  types.Identity{ID: "user-1", Email: "coach@example.com"},
		ExpiresAt: now.Add(time.Hour),
	}

	tests := []struct {
		name          string
		newDevice     bool
		setupMocks    func(mocks)
		expectedBuilt bool
	}{
		{
			name:       "device issued by this request",
			newDevice:  true,
			setupMocks: func(mocks) {},
		},
		{
			name: "returning device without a session",
			setupMocks: func(m mocks) {
				m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(nil, nil).Times(1)
			},
		},
		{
			name: "returning device with a session",
			setupMocks: func(m mocks) {
				m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(persisted, nil).Times(2)
				m.privileges.EXPECT().GetUserRoleStatus(gomock.Any(), "user-1").Return(&types.RoleStatus{}, nil).AnyTimes()
				m.storage.EXPECT().ListTenantsByUserID(gomock.Any(), "user-1").Return([]*types.Tenant{}, nil).AnyTimes()
				m.storage.EXPECT().GetCurrentTenantID(gomock.Any(), "user-1").Return("", nil).AnyTimes()
			},
			expectedBuilt: true,
		},
		{
			name: "session cache failure builds the pipeline",
			setupMocks: func(m mocks) {
				m.cache.EXPECT().Get(gomock.Any(), "device-1").Return(nil, errors.New("redis down")).Times(2)
			},
			expectedBuilt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t, time.Hour, tt.setupMocks)

			ctx := WithDeviceKey(context.Background(), "device-1")
			if tt.newDevice {
				ctx = context.WithValue(ctx, newDeviceCtx{}, true)
			}

			req := httptest.NewRequest("GET", "/athletes", nil).WithContext(ctx)

			sources, err := r.GateLocator()(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			built := r.Len() == 1
			if built != tt.expectedBuilt {
				t.Fatalf("expected pipeline built %v, registry holds %d", tt.expectedBuilt, r.Len())
			}

			if built {
				return
			}

			d := gate.DefaultPolicy().Decide(gate.Input{
				Session:     sources.Session.State(),
				Tenancy:     sources.Tenancy.State(),
				Entitlement: sources.Entitlement.View(),
				Path:        "/athletes",
			})
			if d.Kind != gate.RedirectToSignIn {
				t.Errorf("expected sign in redirect, got %s", d.Kind)
			}
		})
	}
}
