// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/club-access/internal/types"
)

type StorageInterface interface {
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	GetCurrentTenantID(ctx context.Context, userID string) (string, error)
	SetCurrentTenantID(ctx context.Context, userID, tenantID string) error
	CreateTenantWithOwner(ctx context.Context, t *types.Tenant, ownerID string) (*types.Tenant, error)
	GetTenantBilling(ctx context.Context, tenantID string) (*types.Billing, error)
	UpdateSubscription(ctx context.Context, tenantID, status string, plan *string) error
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	EnsureProfile(ctx context.Context, userID string) error
	GetUserRoleStatus(ctx context.Context, userID string) (*types.RoleStatus, error)
}
