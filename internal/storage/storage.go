// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/club-access/internal/db"
	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
	"github.com/canonical/club-access/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"t.id",
	"t.name",
	"t.slug",
	"t.logo_url",
	"t.created_at",
	"t.subscription_status",
	"t.subscription_plan",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// ListTenantsByUserID returns the tenants userID is a member of, oldest membership first
func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(append(tenantColumns, "tu.role", "tu.is_owner")...).
		From("tenants t").
		Join("tenant_users tu ON t.id = tu.tenant_id").
		Where(sq.Eq{"tu.user_id": userID}).
		OrderBy("tu.created_at ASC", "t.id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Slug, &t.LogoURL, &t.CreatedAt, &t.SubscriptionStatus, &t.SubscriptionPlan,
			&t.Role, &t.IsOwner,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// GetCurrentTenantID returns the persisted selection, empty when there is none
func (s *Storage) GetCurrentTenantID(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCurrentTenantID")
	defer span.End()

	var current sql.NullString
	err := s.db.Statement(ctx).
		Select("current_tenant_id").
		From("profiles").
		Where(sq.Eq{"id": userID}).
		QueryRowContext(ctx).
		Scan(&current)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get current tenant: %w", err)
	}

	return current.String, nil
}

func (s *Storage) SetCurrentTenantID(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCurrentTenantID")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "current_tenant_id").
		Values(userID, tenantID).
		Suffix("ON CONFLICT (id) DO UPDATE SET current_tenant_id = EXCLUDED.current_tenant_id, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		return translate(err, "failed to set current tenant")
	}

	return nil
}

// CreateTenantWithOwner inserts the tenant and the owner membership atomically
func (s *Storage) CreateTenantWithOwner(ctx context.Context, t *types.Tenant, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantWithOwner")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	created := new(types.Tenant)

	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		err := s.db.Statement(txCtx).
			Insert("tenants").
			Columns("id", "name", "slug", "logo_url").
			Values(id.String(), t.Name, t.Slug, t.LogoURL).
			Suffix("RETURNING id, name, slug, logo_url, created_at, subscription_status, subscription_plan").
			QueryRowContext(txCtx).
			Scan(&created.ID, &created.Name, &created.Slug, &created.LogoURL, &created.CreatedAt, &created.SubscriptionStatus, &created.SubscriptionPlan)
		if err != nil {
			return translate(err, "failed to insert tenant")
		}

		_, err = s.db.Statement(txCtx).
			Insert("tenant_users").
			Columns("tenant_id", "user_id", "role", "is_owner").
			Values(created.ID, ownerID, types.RoleOwner, true).
			ExecContext(txCtx)
		if err != nil {
			return translate(err, "failed to insert owner membership")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	created.Role = types.RoleOwner
	created.IsOwner = true

	return created, nil
}

func (s *Storage) GetTenantBilling(ctx context.Context, tenantID string) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBilling")
	defer span.End()

	b := types.Billing{TenantID: tenantID}
	err := s.db.Statement(ctx).
		Select("created_at", "subscription_status", "subscription_plan").
		From("tenants").
		Where(sq.Eq{"id": tenantID}).
		QueryRowContext(ctx).
		Scan(&b.CreatedAt, &b.SubscriptionStatus, &b.SubscriptionPlan)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant billing: %w", err)
	}

	return &b, nil
}

func (s *Storage) UpdateSubscription(ctx context.Context, tenantID, status string, plan *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubscription")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(map[string]interface{}{
			"subscription_status": status,
			"subscription_plan":   plan,
		}).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("tenant_id", "user_id", "role", "is_owner").
		From("tenant_users").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.TenantID, &m.UserID, &m.Role, &m.IsOwner)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// EnsureProfile creates the profile row for userID, doing nothing if it already exists
func (s *Storage) EnsureProfile(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id").
		Values(userID).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return translate(err, "failed to create profile")
	}

	return nil
}

func (s *Storage) GetUserRoleStatus(ctx context.Context, userID string) (*types.RoleStatus, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserRoleStatus")
	defer span.End()

	status := new(types.RoleStatus)
	err := s.db.Statement(ctx).
		Select("is_super_admin").
		From("profiles").
		Where(sq.Eq{"id": userID}).
		QueryRowContext(ctx).
		Scan(&status.IsSuperAdmin)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get role status: %w", err)
	}

	return status, nil
}
