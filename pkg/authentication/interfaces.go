// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

// CallerVerifierInterface decides whether a raw bearer token belongs to a
// service that may call the identity hooks
type CallerVerifierInterface interface {
	Verify(ctx context.Context, rawToken string) (*Caller, error)
}
