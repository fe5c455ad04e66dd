// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/club-access/internal/kratos"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

var (
	ErrMissingIdentity = errors.New("identity id is empty")
	ErrUnknownIdentity = errors.New("identity does not exist")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	identities IdentityProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration makes sure a freshly registered identity has a profile row,
// clubs are created later by the user. With an identity provider configured the
// identity is confirmed to exist first and a missing email is filled from it.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" {
		return ErrMissingIdentity
	}

	if s.identities != nil {
		identity, err := s.identities.GetIdentity(ctx, identityID)
		if errors.Is(err, kratos.ErrIdentityNotFound) {
			s.logger.Security().AuthzFailure(identityID, "profile")
			return ErrUnknownIdentity
		}
		if err != nil {
			return fmt.Errorf("failed to look up identity: %w", err)
		}

		if email == "" {
			email = identity.Email
		}
	}

	if err := s.storage.EnsureProfile(ctx, identityID); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infof("profile ready for identity %s (%s)", identityID, email)

	return nil
}

// NewService wires the registration hook, identities may be nil when the
// identity provider admin API is not available
func NewService(storage StorageInterface, identities IdentityProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.identities = identities

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
