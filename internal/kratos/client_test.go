// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ory "github.com/ory/client-go"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

func TestToSession(t *testing.T) {
	expires := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	s := &ory.Session{
		Id: "session-1",
		Identity: &ory.Identity{
			Id: "user-1",
			Traits: map[string]interface{}{
				"email": "coach@example.com",
				"name":  "Coach",
			},
		},
		ExpiresAt: &expires,
	}

	session := toSession("token-1", s)

	if session.Token != "token-1" {
		t.Errorf("expected token-1, got %s", session.Token)
	}
	if session.Identity.ID != "user-1" || session.Identity.Email != "coach@example.com" || session.Identity.DisplayName != "Coach" {
		t.Errorf("unexpected identity %+v", session.Identity)
	}
	if !session.ExpiresAt.Equal(expires) {
		t.Errorf("expected %v, got %v", expires, session.ExpiresAt)
	}
}

func TestToIdentityWithoutTraits(t *testing.T) {
	identity := toIdentity(&ory.Identity{Id: "user-2"})

	if identity.ID != "user-2" || identity.Email != "" {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestClientGetIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/admin/identities/user-1" {
			_, _ = w.Write([]byte(`{"id":"user-1","schema_id":"default","schema_url":"http://kratos/schemas/default","traits":{"email":"coach@example.com","name":"Coach"}}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Unable to locate the resource"}}`))
	}))
	defer srv.Close()

	tests := []struct {
		name          string
		adminURL      string
		id            string
		expectedEmail string
		expectedErr   error
	}{
		{name: "known identity", adminURL: srv.URL, id: "user-1", expectedEmail: "coach@example.com"},
		{name: "unknown identity", adminURL: srv.URL, id: "user-2", expectedErr: ErrIdentityNotFound},
		{name: "admin api not configured", id: "user-1", expectedErr: ErrAdminUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(srv.URL, tt.adminURL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			if c.HasAdmin() != (tt.adminURL != "") {
				t.Fatalf("unexpected HasAdmin %v", c.HasAdmin())
			}

			identity, err := c.GetIdentity(context.Background(), tt.id)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			if err == nil && identity.Email != tt.expectedEmail {
				t.Errorf("expected email %s, got %+v", tt.expectedEmail, identity)
			}
		})
	}
}
