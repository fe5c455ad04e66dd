// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"time"

	"github.com/canonical/club-access/internal/types"
)

const (
	TrialDays = 7

	day = 24 * time.Hour
)

// Compute derives the entitlement of a tenant at now. It is a pure function of
// its arguments; the trial clock starts at CreatedAt and is never stored.
func Compute(b types.Billing, now time.Time) types.EntitlementState {
	trialEndsAt := b.CreatedAt.AddDate(0, 0, TrialDays)

	days := 0
	if remaining := trialEndsAt.Sub(now); remaining > 0 {
		days = int((remaining + day - 1) / day)
	}

	subscribed := HasActiveSubscription(b)

	status := types.StatusTrial
	switch {
	case subscribed:
		status = types.StatusActive
	case days == 0:
		status = types.StatusExpired
	}

	return types.EntitlementState{
		TrialDaysRemaining:    days,
		IsTrialExpired:        days == 0,
		HasActiveSubscription: subscribed,
		Status:                status,
		TrialEndsAt:           trialEndsAt,
	}
}

// HasActiveSubscription requires both an active status and a plan
func HasActiveSubscription(b types.Billing) bool {
	if b.SubscriptionStatus == nil || *b.SubscriptionStatus != types.SubscriptionActive {
		return false
	}

	return b.SubscriptionPlan != nil && *b.SubscriptionPlan != ""
}

// CanAccessApp grants access while loading and when no entitlement could be
// computed. Callers needing strict enforcement must check Status themselves.
func CanAccessApp(loading bool, e *types.EntitlementState) bool {
	if loading || e == nil {
		return true
	}

	return e.Status == types.StatusTrial || e.Status == types.StatusActive
}
