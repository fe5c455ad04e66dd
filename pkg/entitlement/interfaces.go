// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"

	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/tenancy"
)

type StorageInterface interface {
	GetTenantBilling(ctx context.Context, tenantID string) (*types.Billing, error)
}

type TenancySourceInterface interface {
	State() tenancy.State
	Subscribe(func(tenancy.State)) func()
}
