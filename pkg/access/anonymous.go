// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/gate"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

type anonymousSession struct{}

func (anonymousSession) State() session.State {
	return session.State{}
}

func (anonymousSession) Subscribe(func(session.State)) func() {
	return func() {}
}

type anonymousTenancy struct{}

func (anonymousTenancy) State() tenancy.State {
	return tenancy.State{}
}

func (anonymousTenancy) Subscribe(func(tenancy.State)) func() {
	return func() {}
}

type anonymousEntitlement struct{}

func (anonymousEntitlement) View() entitlement.View {
	return entitlement.View{}
}

func (anonymousEntitlement) Subscribe(func(entitlement.State)) func() {
	return func() {}
}

// anonymousSources is the settled view of a device without a session, it never
// changes and is shared by every such device
func anonymousSources() gate.Sources {
	return gate.Sources{
		Session:     anonymousSession{},
		Tenancy:     anonymousTenancy{},
		Entitlement: anonymousEntitlement{},
	}
}
