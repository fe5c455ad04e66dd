// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/session"
)

// StorageInterface is the subset of internal/storage the resolver needs
type StorageInterface interface {
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	GetCurrentTenantID(ctx context.Context, userID string) (string, error)
	SetCurrentTenantID(ctx context.Context, userID, tenantID string) error
	CreateTenantWithOwner(ctx context.Context, t *types.Tenant, ownerID string) (*types.Tenant, error)
}

type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, userID string) error
}

type SessionSourceInterface interface {
	State() session.State
	Subscribe(func(session.State)) func()
}
