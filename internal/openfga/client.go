// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) available(err error) {
	value := 1.0
	if err != nil {
		value = 0.0
	}

	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, value)
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	r, err := c.c.Check(ctx).Body(
		client.ClientCheckRequest{
			User:     user,
			Relation: relation,
			Object:   object,
		},
	).Execute()
	c.available(err)

	if err != nil {
		c.logger.Errorf("issues performing check operation: %v", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).Body(
		client.ClientWriteTuplesBody{
			{
				User:     user,
				Relation: relation,
				Object:   object,
			},
		},
	).Execute()
	c.available(err)

	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fga, err := client.NewSdkClient(
		&client.ClientConfiguration{
			ApiUrl:               fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
			StoreId:              cfg.StoreID,
			AuthorizationModelId: cfg.AuthModelID,
			Debug:                cfg.Debug,
			Credentials: &credentials.Credentials{
				Method: credentials.CredentialsMethodApiToken,
				Config: &credentials.Config{
					ApiToken: cfg.ApiToken,
				},
			},
		},
	)
	if err != nil {
		c.logger.Fatalf("issues setting up OpenFGA client %s", err)
	}

	c.c = fga

	return c
}
