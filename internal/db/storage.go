// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/club-access/internal/logging"
	"github.com/canonical/club-access/internal/monitoring"
	"github.com/canonical/club-access/internal/tracing"
)

const defaultTxTimeout = 30 * time.Second

type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx begins the transaction on first use, so WithTx blocks that end up
// not touching the database never open one
type lazyTx struct {
	db        *sql.DB
	tx        *sql.Tx
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (*sql.Tx, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the caller context so a cancelled request does not roll back
	// a transaction halfway through WithTx, bounded by a timeout instead
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the transaction in ctx if WithTx opened one,
// to the pool otherwise
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err == nil {
			return builder.RunWith(tx)
		}

		d.logger.Errorf("failed to begin transaction, using pool: %v", err)
	}

	return builder.RunWith(d.db)
}

// WithTx runs fn inside a transaction committed when fn returns nil and rolled
// back otherwise
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db}

	defer func() {
		if lt.started() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt)); err != nil {
		return err
	}

	if !lt.started() {
		return nil
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	lt.committed = true

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0.0
	}
	_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available)

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates the pgx pool, instruments it when tracing is enabled and
// exposes it through database/sql for squirrel
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
