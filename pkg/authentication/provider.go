// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// hook callers are services, their tokens carry no audience we could check
var verifierConfig = &oidc.Config{SkipClientIDCheck: true}

// NewProvider creates an OIDC provider using the issuer's well-known configuration
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return provider, nil
}

// NewKeySetVerifier skips discovery and fetches signing keys from jwksURL
func NewKeySetVerifier(ctx context.Context, issuer, jwksURL string) *oidc.IDTokenVerifier {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), verifierConfig)
}

// NewHookVerifier builds the verifier guarding the identity hooks, using the
// JWKS URL when one is given and OIDC discovery otherwise
func NewHookVerifier(
	ctx context.Context,
	issuer, jwksURL string,
	policy Policy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if issuer == "" {
		return nil, errors.New("issuer is required for hook authentication")
	}

	if jwksURL != "" {
		logger.Infof("verifying hook callers against JWKS %s", jwksURL)
		return NewJWTVerifier(NewKeySetVerifier(ctx, issuer, jwksURL), policy, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	logger.Infof("verifying hook callers through OIDC discovery of %s", issuer)

	return NewJWTVerifier(verifierFrom(provider), policy, tracer, monitor, logger), nil
}

func verifierFrom(p ProviderInterface) *oidc.IDTokenVerifier {
	return p.Verifier(verifierConfig)
}
