// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/entitlement"
)

type StorageInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	UpdateSubscription(ctx context.Context, tenantID, status string, plan *string) error
}

type ServiceInterface interface {
	Plans() []Plan
	UpdateSubscription(ctx context.Context, identityID, tenantID, planID string) error
	CancelSubscription(ctx context.Context, identityID, tenantID string) error
}

// PipelineInterface is the slice of a device pipeline the billing endpoints use
type PipelineInterface interface {
	IdentityID() string
	CurrentTenantID() string
	RefreshBilling(ctx context.Context) entitlement.View
}
