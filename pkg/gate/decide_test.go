// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

var (
	sessionLoading = session.State{Loading: true}
	signedOut      = session.State{}
	signedIn       = session.State{Identity: &types.Identity{ID: "user-1"}}

	tenancyLoading = tenancy.State{Loading: true}
	tenancyReady   = tenancy.State{IdentityID: "user-1", Current: &types.Tenant{ID: "t1"}}
)

func view(age time.Duration, status, plan *string) entitlement.View {
	return entitlement.ViewAt(
		entitlement.State{
			Billing: &types.Billing{TenantID: "t1", CreatedAt: now.Add(-age), SubscriptionStatus: status, SubscriptionPlan: plan},
		},
		now,
	)
}

func strPtr(s string) *string {
	return &s
}

func TestDecidePrecedence(t *testing.T) {
	expired := view(10*24*time.Hour, strPtr("trial"), nil)
	trial := view(3*24*time.Hour, nil, nil)
	entLoading := entitlement.View{Loading: true, CanAccessApp: true}

	tests := []struct {
		name     string
		input    Input
		expected Decision
	}{
		{
			name:     "session loading wins over everything",
			input:    Input{Session: sessionLoading, Tenancy: tenancyReady, Entitlement: expired, Path: "/athletes"},
			expected: Decision{Kind: ShowLoading},
		},
		{
			name:     "session loading with settled stale downstream",
			input:    Input{Session: session.State{Loading: true, Identity: &types.Identity{ID: "user-1"}}, Tenancy: tenancyReady, Entitlement: trial, Path: "/"},
			expected: Decision{Kind: ShowLoading},
		},
		{
			name:     "tenancy loading",
			input:    Input{Session: signedIn, Tenancy: tenancyLoading, Entitlement: trial, Path: "/athletes"},
			expected: Decision{Kind: ShowLoading},
		},
		{
			name:     "entitlement loading",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: entLoading, Path: "/athletes"},
			expected: Decision{Kind: ShowLoading},
		},
		{
			name:     "signed out with stale downstream data",
			input:    Input{Session: signedOut, Tenancy: tenancyReady, Entitlement: expired, Path: "/athletes"},
			expected: Decision{Kind: RedirectToSignIn, Location: "/auth?redirect=%2Fathletes"},
		},
		{
			name:     "sign in redirect keeps the query",
			input:    Input{Session: signedOut, Path: "/games?season=2026"},
			expected: Decision{Kind: RedirectToSignIn, Location: "/auth?redirect=%2Fgames%3Fseason%3D2026"},
		},
		{
			name:     "expired trial on a regular page",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/athletes"},
			expected: Decision{Kind: RedirectToBilling, Location: "/billing"},
		},
		{
			name:     "expired trial on settings",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/settings"},
			expected: Decision{Kind: Render},
		},
		{
			name:     "expired trial below settings",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/settings/profile"},
			expected: Decision{Kind: Render},
		},
		{
			name:     "expired trial on billing",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/billing?plan=pro"},
			expected: Decision{Kind: Render},
		},
		{
			name:     "prefix must match a whole segment",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/settingsx"},
			expected: Decision{Kind: RedirectToBilling, Location: "/billing"},
		},
		{
			name:     "expired trial on a route flagged exempt",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: expired, Path: "/help", Exempt: true},
			expected: Decision{Kind: Render},
		},
		{
			name:     "active trial",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: trial, Path: "/athletes"},
			expected: Decision{Kind: Render},
		},
		{
			name:     "subscribed after trial",
			input:    Input{Session: signedIn, Tenancy: tenancyReady, Entitlement: view(10*24*time.Hour, strPtr("active"), strPtr("pro")), Path: "/athletes"},
			expected: Decision{Kind: Render},
		},
		{
			name:     "no entitlement result fails open",
			input:    Input{Session: signedIn, Tenancy: tenancy.State{IdentityID: "user-1"}, Entitlement: entitlement.ViewAt(entitlement.State{}, now), Path: "/athletes"},
			expected: Decision{Kind: Render},
		},
	}

	policy := DefaultPolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Decide(tt.input))
		})
	}
}

func TestPolicyIsPublic(t *testing.T) {
	policy := DefaultPolicy()

	assert.True(t, policy.IsPublic("/auth"))
	assert.True(t, policy.IsPublic("/auth?redirect=%2F"))
	assert.True(t, policy.IsPublic("/assets/app.js"))
	assert.False(t, policy.IsPublic("/authors"))
	assert.False(t, policy.IsPublic("/"))
}
