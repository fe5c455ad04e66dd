// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionTrial     = "trial"
)

// Identity is the authenticated caller as reported by the identity provider.
// The elevated privilege flag is deliberately not part of it.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// Session pairs an identity with the opaque token the identity provider issued for it
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Tenant struct {
	ID                 string    `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Slug               string    `db:"slug" json:"slug"`
	LogoURL            *string   `db:"logo_url" json:"logo_url,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	SubscriptionStatus *string   `db:"subscription_status" json:"subscription_status,omitempty"`
	SubscriptionPlan   *string   `db:"subscription_plan" json:"subscription_plan,omitempty"`

	// Role and IsOwner describe the membership of the identity the tenant was listed for
	Role    string `json:"role,omitempty"`
	IsOwner bool   `json:"is_owner"`
}

// Billing returns the fields the entitlement computation depends on
func (t *Tenant) Billing() Billing {
	return Billing{
		TenantID:           t.ID,
		CreatedAt:          t.CreatedAt,
		SubscriptionStatus: t.SubscriptionStatus,
		SubscriptionPlan:   t.SubscriptionPlan,
	}
}

type Membership struct {
	TenantID string `db:"tenant_id"`
	UserID   string `db:"user_id"`
	Role     string `db:"role"`
	IsOwner  bool   `db:"is_owner"`
}

type Profile struct {
	ID              string  `db:"id"`
	CurrentTenantID *string `db:"current_tenant_id"`
	IsSuperAdmin    bool    `db:"is_super_admin"`
}

type RoleStatus struct {
	IsSuperAdmin bool `json:"is_super_admin"`
}

// Billing holds the billing related fields of a tenant, created_at doubles as the
// origin of the trial clock
type Billing struct {
	TenantID           string
	CreatedAt          time.Time
	SubscriptionStatus *string
	SubscriptionPlan   *string
}

type EntitlementStatus string

const (
	StatusTrial   EntitlementStatus = "trial"
	StatusActive  EntitlementStatus = "active"
	StatusExpired EntitlementStatus = "expired"
)

type EntitlementState struct {
	TrialDaysRemaining    int               `json:"trial_days_remaining"`
	IsTrialExpired        bool              `json:"is_trial_expired"`
	HasActiveSubscription bool              `json:"has_active_subscription"`
	Status                EntitlementStatus `json:"status"`
	TrialEndsAt           time.Time         `json:"trial_ends_at"`
}
