// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/club-access/internal/types"
)

type IdentityProviderInterface interface {
	GetSession(ctx context.Context, token string) (*types.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*types.Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*types.Identity, *types.Session, error)
	SignOut(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email string) error
}

type PrivilegeCheckerInterface interface {
	GetUserRoleStatus(ctx context.Context, identityID string) (*types.RoleStatus, error)
}

// SessionCacheInterface persists session artifacts per browser device
type SessionCacheInterface interface {
	Get(ctx context.Context, deviceKey string) (*types.Session, error)
	Set(ctx context.Context, deviceKey string, session *types.Session) error
	Delete(ctx context.Context, deviceKey string) error
}
