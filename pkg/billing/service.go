// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/storage"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

var (
	ErrUnknownPlan = errors.New("unknown plan")
	ErrForbidden   = errors.New("only owners and admins can manage the subscription")
	ErrNoTenant    = errors.New("no current tenant")
)

var _ ServiceInterface = (*Service)(nil)

// Service simulates subscription purchases, no payment provider is involved
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Plans() []Plan {
	plans := make([]Plan, len(catalogue))
	copy(plans, catalogue)

	return plans
}

func (s *Service) UpdateSubscription(ctx context.Context, identityID, tenantID, planID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.UpdateSubscription")
	defer span.End()

	plan, ok := lookupPlan(planID)
	if !ok {
		return ErrUnknownPlan
	}

	if err := s.authorize(ctx, identityID, tenantID); err != nil {
		return err
	}

	if err := s.storage.UpdateSubscription(ctx, tenantID, types.SubscriptionActive, &plan.ID); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	s.logger.Infof("tenant %s subscribed to %s by %s", tenantID, plan.ID, identityID)

	return nil
}

func (s *Service) CancelSubscription(ctx context.Context, identityID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CancelSubscription")
	defer span.End()

	if err := s.authorize(ctx, identityID, tenantID); err != nil {
		return err
	}

	if err := s.storage.UpdateSubscription(ctx, tenantID, types.SubscriptionCancelled, nil); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.logger.Infof("tenant %s subscription cancelled by %s", tenantID, identityID)

	return nil
}

func (s *Service) authorize(ctx context.Context, identityID, tenantID string) error {
	if tenantID == "" {
		return ErrNoTenant
	}

	m, err := s.storage.GetMembership(ctx, tenantID, identityID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if !m.IsOwner && m.Role != types.RoleOwner && m.Role != types.RoleAdmin {
		return ErrForbidden
	}

	return nil
}

func NewService(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
