// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"net/url"
	"strings"

	"github.com/canonical/club-access/pkg/entitlement"
	"github.com/canonical/club-access/pkg/session"
	"github.com/canonical/club-access/pkg/tenancy"
)

type Kind string

const (
	ShowLoading       Kind = "show_loading"
	RedirectToSignIn  Kind = "redirect_to_sign_in"
	RedirectToBilling Kind = "redirect_to_billing"
	Render            Kind = "render"
)

type Decision struct {
	Kind     Kind   `json:"kind"`
	Location string `json:"location,omitempty"`
}

// Input is everything a decision depends on. Path may carry a query string,
// it is kept in the sign in redirect.
type Input struct {
	Session     session.State
	Tenancy     tenancy.State
	Entitlement entitlement.View
	Path        string
	Exempt      bool
}

type Policy struct {
	SignInPath  string
	BillingPath string
	// ExemptPrefixes skip the entitlement check, a prefix matches itself and
	// anything below it
	ExemptPrefixes []string
	// PublicPrefixes are never gated by the middleware
	PublicPrefixes []string
}

func DefaultPolicy() Policy {
	return Policy{
		SignInPath:     "/auth",
		BillingPath:    "/billing",
		ExemptPrefixes: []string{"/billing", "/settings"},
		PublicPrefixes: []string{"/auth", "/assets"},
	}
}

// Decide evaluates, in order: loading, identity, entitlement
func (p Policy) Decide(in Input) Decision {
	if in.Session.Loading || in.Tenancy.Loading || in.Entitlement.Loading {
		return Decision{Kind: ShowLoading}
	}

	if in.Session.Identity == nil {
		return Decision{
			Kind:     RedirectToSignIn,
			Location: p.SignInPath + "?redirect=" + url.QueryEscape(in.Path),
		}
	}

	if !in.Entitlement.CanAccessApp && !in.Exempt && !p.IsExempt(in.Path) {
		return Decision{Kind: RedirectToBilling, Location: p.BillingPath}
	}

	return Decision{Kind: Render}
}

func (p Policy) IsExempt(path string) bool {
	return matchPrefix(p.ExemptPrefixes, path)
}

func (p Policy) IsPublic(path string) bool {
	return matchPrefix(p.PublicPrefixes, path)
}

func matchPrefix(prefixes []string, path string) bool {
	path, _, _ = strings.Cut(path, "?")

	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/") {
			return true
		}
	}

	return false
}
