// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

const (
	passwordMethod = "password"
	codeMethod     = "code"
)

// Client talks to the Kratos public API with native (token based) flows
// and, when configured, to the admin API for identity lookups
type Client struct {
	public *ory.APIClient
	admin  *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func newAPIClient(url string) *ory.APIClient {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: url}}
	conf.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	return ory.NewAPIClient(conf)
}

// NewClient builds the Kratos client, an empty adminURL disables GetIdentity
func NewClient(publicURL, adminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.public = newAPIClient(publicURL)
	if adminURL != "" {
		c.admin = newAPIClient(adminURL)
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// HasAdmin reports whether identity lookups are available
func (c *Client) HasAdmin() bool {
	return c.admin != nil
}

func (c *Client) available(err error, r *http.Response) {
	value := 1.0
	// a 4xx is the caller's problem, the dependency itself answered
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		value = 0.0
	}

	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, value)
}

// GetSession validates token and returns the session it belongs to
func (c *Client) GetSession(ctx context.Context, token string) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetSession")
	defer span.End()

	session, r, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	c.available(err, r)

	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Active != nil && !*session.Active {
		return nil, ErrSessionInvalid
	}

	return toSession(token, session), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SignInWithPassword")
	defer span.End()

	flow, r, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	c.available(err, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&ory.UpdateLoginFlowWithPasswordMethod{
			Method:     passwordMethod,
			Identifier: email,
			Password:   password,
		},
	)

	login, r, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).Flow(flow.Id).UpdateLoginFlowBody(body).Execute()
	c.available(err, r)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusBadRequest {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to complete login flow: %w", err)
	}

	if login.SessionToken == nil {
		return nil, fmt.Errorf("login flow returned no session token")
	}

	return toSession(*login.SessionToken, &login.Session), nil
}

// SignUp registers a new identity, the returned session is nil when the identity
// provider does not issue one on registration
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*types.Identity, *types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SignUp")
	defer span.End()

	flow, r, err := c.public.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	c.available(err, r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create registration flow: %w", err)
	}

	traits := map[string]interface{}{"email": email}
	if displayName != "" {
		traits["name"] = displayName
	}

	body := ory.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(
		&ory.UpdateRegistrationFlowWithPasswordMethod{
			Method:   passwordMethod,
			Password: password,
			Traits:   traits,
		},
	)

	registration, r, err := c.public.FrontendAPI.UpdateRegistrationFlow(ctx).Flow(flow.Id).UpdateRegistrationFlowBody(body).Execute()
	c.available(err, r)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusBadRequest {
			// kratos reports both duplicates and policy violations as a 400 on the flow
			return nil, nil, fmt.Errorf("%w: %v", ErrIdentityExists, err)
		}
		return nil, nil, fmt.Errorf("failed to complete registration flow: %w", err)
	}

	identity := toIdentity(&registration.Identity)

	if registration.SessionToken == nil || registration.Session == nil {
		return identity, nil, nil
	}

	return identity, toSession(*registration.SessionToken, registration.Session), nil
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SignOut")
	defer span.End()

	r, err := c.public.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: token}).
		Execute()
	c.available(err, r)

	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// ResetPassword starts a code recovery flow, kratos emails the code to the address
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.ResetPassword")
	defer span.End()

	flow, r, err := c.public.FrontendAPI.CreateNativeRecoveryFlow(ctx).Execute()
	c.available(err, r)
	if err != nil {
		return fmt.Errorf("failed to create recovery flow: %w", err)
	}

	body := ory.UpdateRecoveryFlowWithCodeMethodAsUpdateRecoveryFlowBody(
		&ory.UpdateRecoveryFlowWithCodeMethod{
			Method: codeMethod,
			Email:  &email,
		},
	)

	_, r, err = c.public.FrontendAPI.UpdateRecoveryFlow(ctx).Flow(flow.Id).UpdateRecoveryFlowBody(body).Execute()
	c.available(err, r)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to submit recovery flow: %w", err)
	}

	return nil
}

// GetIdentity returns the identity with the given id from the admin API
func (c *Client) GetIdentity(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	if c.admin == nil {
		return nil, ErrAdminUnavailable
	}

	identity, r, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.available(err, r)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return toIdentity(identity), nil
}

func toIdentity(i *ory.Identity) *types.Identity {
	identity := &types.Identity{ID: i.Id}

	if traits, ok := i.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			identity.Email = e
		}
		if n, ok := traits["name"].(string); ok {
			identity.DisplayName = n
		}
	}

	return identity
}

func toSession(token string, s *ory.Session) *types.Session {
	session := &types.Session{Token: token}

	if s.Identity != nil {
		session.Identity = *toIdentity(s.Identity)
	}

	if s.ExpiresAt != nil {
		session.ExpiresAt = *s.ExpiresAt
	}

	return session
}
