// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/tenancy"
)

type StorageInterface interface {
	tenancy.StorageInterface
	entitlement.StorageInterface
}
