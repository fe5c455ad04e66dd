// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client       AuthzClientInterface
	privilegedID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) AssignTenantOwner(ctx context.Context, tenantId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), OWNER_RELATION, TenantTuple(tenantId))
}

func (a *Authorizer) GetUserRoleStatus(ctx context.Context, userId string) (*types.RoleStatus, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.GetUserRoleStatus")
	defer span.End()

	allowed, err := a.client.Check(ctx, UserTuple(userId), ADMIN_RELATION, PrivilegedTuple(a.privilegedID))
	if err != nil {
		a.logger.Errorf("failed to check privileged admin for %s: %v", userId, err)
		return nil, fmt.Errorf("failed to check role status: %w", err)
	}

	return &types.RoleStatus{IsSuperAdmin: allowed}, nil
}

func NewAuthorizer(client AuthzClientInterface, privilegedID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.privilegedID = privilegedID
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
