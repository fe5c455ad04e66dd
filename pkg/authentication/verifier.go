// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrNoPolicy     = errors.New("no hook access policy configured")
	ErrNotAllowed   = errors.New("caller is not allowed to call hooks")
)

const hooksResource = "identity_hooks"

var _ CallerVerifierInterface = (*JWTVerifier)(nil)

// Policy lists who may call the hooks: a caller passes when its subject is
// allow-listed or its token carries the required scope
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
}

func (p Policy) allows(c *Caller) error {
	if len(p.AllowedSubjects) == 0 && p.RequiredScope == "" {
		return ErrNoPolicy
	}

	if slices.Contains(p.AllowedSubjects, c.Subject) {
		return nil
	}

	if p.RequiredScope != "" && slices.Contains(c.Scopes, p.RequiredScope) {
		return nil
	}

	return ErrNotAllowed
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) Verify(ctx context.Context, rawToken string) (*Caller, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.Verify")
	defer span.End()

	if rawToken == "" {
		return nil, ErrMissingToken
	}

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	var claims struct {
		Subject string   `json:"sub"`
		Scope   string   `json:"scope"`
		Scopes  []string `json:"scp"`
	}

	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to extract claims: %w", err)
	}

	c := &Caller{
		Subject: claims.Subject,
		Scopes:  append(strings.Fields(claims.Scope), claims.Scopes...),
	}

	if err := v.policy.allows(c); err != nil {
		v.logger.Security().AuthzFailure(c.Subject, hooksResource)
		return nil, err
	}

	return c, nil
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	policy Policy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.policy = policy

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
