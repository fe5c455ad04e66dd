// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/club-access/internal/types"
)

type AuthorizerInterface interface {
	AssignTenantOwner(context.Context, string, string) error
	// GetUserRoleStatus reports whether the identity is an admin of the configured privileged group.
	GetUserRoleStatus(context.Context, string) (*types.RoleStatus, error)
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
}
