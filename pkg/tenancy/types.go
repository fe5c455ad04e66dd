// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"

	"github.com/canonical/club-access/internal/types"
)

var (
	ErrTenantExists    = errors.New("a club with this name already exists")
	ErrNotMember       = errors.New("identity is not a member of this tenant")
	ErrUnauthenticated = errors.New("no signed in identity")
)

// State is the snapshot published by the Resolver. IdentityID is the identity
// the snapshot was resolved for.
type State struct {
	Tenants    []*types.Tenant `json:"tenants"`
	Current    *types.Tenant   `json:"current"`
	Loading    bool            `json:"loading"`
	IdentityID string          `json:"-"`
}

// CurrentID returns the id of the current tenant, empty when there is none
func (s State) CurrentID() string {
	if s.Current == nil {
		return ""
	}

	return s.Current.ID
}

func find(tenants []*types.Tenant, id string) *types.Tenant {
	if id == "" {
		return nil
	}

	for _, t := range tenants {
		if t.ID == id {
			return t
		}
	}

	return nil
}
