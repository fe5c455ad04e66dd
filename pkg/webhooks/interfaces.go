// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/club-access/internal/types"
)

type StorageInterface interface {
	EnsureProfile(ctx context.Context, userID string) error
}

// IdentityProviderInterface looks identities up on the admin side of the identity provider
type IdentityProviderInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
}
