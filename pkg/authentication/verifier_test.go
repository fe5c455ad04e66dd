// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-jose/go-jose/v4"
	"go.uber.org/mock/gomock"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

const issuer = "https://auth.example.com"

func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: key}, nil)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to encode claims: %v", err)
	}

	jws, err := signer.Sign(payload)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	raw, err := jws.CompactSerialize()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	return raw
}

func TestJWTVerifier_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	exp := time.Now().Add(time.Hour).Unix()

	claims := func(sub string, extra map[string]any) map[string]any {
		c := map[string]any{"iss": issuer, "sub": sub, "exp": exp}
		for k, v := range extra {
			c[k] = v
		}
		return c
	}

	tests := []struct {
		name        string
		policy      Policy
		token       func() string
		expectedErr error
		wantErr     bool
		expected    string
	}{
		{
			name:   "allow-listed subject",
			policy: Policy{AllowedSubjects: []string{"kratos"}},
			token: func() string {
				return signToken(t, key, claims("kratos", nil))
			},
			expected: "kratos",
		},
		{
			name:   "space separated scope",
			policy: Policy{RequiredScope: "hooks"},
			token: func() string {
				return signToken(t, key, claims("svc", map[string]any{"scope": "openid hooks"}))
			},
			expected: "svc",
		},
		{
			name:   "scp claim",
			policy: Policy{RequiredScope: "hooks"},
			token: func() string {
				return signToken(t, key, claims("svc", map[string]any{"scp": []string{"hooks"}}))
			},
			expected: "svc",
		},
		{
			name:   "subject not allowed",
			policy: Policy{AllowedSubjects: []string{"kratos"}, RequiredScope: "hooks"},
			token: func() string {
				return signToken(t, key, claims("intruder", nil))
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name:   "no policy",
			policy: Policy{},
			token: func() string {
				return signToken(t, key, claims("kratos", nil))
			},
			expectedErr: ErrNoPolicy,
		},
		{
			name:   "foreign signing key",
			policy: Policy{AllowedSubjects: []string{"kratos"}},
			token: func() string {
				return signToken(t, other, claims("kratos", nil))
			},
			wantErr: true,
		},
		{
			name:   "wrong issuer",
			policy: Policy{AllowedSubjects: []string{"kratos"}},
			token: func() string {
				return signToken(t, key, claims("kratos", map[string]any{"iss": "https://evil.example.com"}))
			},
			wantErr: true,
		},
		{
			name:        "empty token",
			policy:      Policy{AllowedSubjects: []string{"kratos"}},
			token:       func() string { return "" },
			expectedErr: ErrMissingToken,
		},
	}

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewJWTVerifier(
				oidc.NewVerifier(issuer, keySet, verifierConfig),
				tt.policy,
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test"),
				logging.NewNoopLogger(),
			)

			caller, err := v.Verify(context.Background(), tt.token())

			switch {
			case tt.expectedErr != nil:
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
			case tt.wantErr:
				if err == nil {
					t.Error("expected error but got none")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if caller.Subject != tt.expected {
					t.Errorf("expected subject %q, got %q", tt.expected, caller.Subject)
				}
			}
		})
	}
}

func TestVerifierFromProvider(t *testing.T) {
	ctrl := gomock.NewController(t)

	expected := oidc.NewVerifier(issuer, &oidc.StaticKeySet{}, verifierConfig)

	p := NewMockProviderInterface(ctrl)
	p.EXPECT().Verifier(verifierConfig).Return(expected)

	if got := verifierFrom(p); got != expected {
		t.Error("expected the provider's verifier")
	}
}

func TestNewHookVerifier_RequiresIssuer(t *testing.T) {
	_, err := NewHookVerifier(context.Background(), "", "", Policy{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err == nil {
		t.Error("expected an error without issuer")
	}
}
