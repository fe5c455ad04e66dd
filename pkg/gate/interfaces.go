// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

type SessionSourceInterface interface {
	State() session.State
	Subscribe(func(session.State)) func()
}

type TenancySourceInterface interface {
	State() tenancy.State
	Subscribe(func(tenancy.State)) func()
}

type EntitlementSourceInterface interface {
	View() entitlement.View
	Subscribe(func(entitlement.State)) func()
}

// Sources are the three stages of one device pipeline
type Sources struct {
	Session     SessionSourceInterface
	Tenancy     TenancySourceInterface
	Entitlement EntitlementSourceInterface
}
