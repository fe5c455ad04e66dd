// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/club-access/migrations"
)

var errPendingMigrations = errors.New("migrations are pending")

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run database migrations. The DSN is read from --dsn or the DSN environment variable.`,
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid migrate command: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down accepts a target version: %q", args)
		}

		if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

// migrator runs goose against the embedded migrations and reports in text or json
type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	target := int64(-1)
	if len(args) > 1 {
		v, _ := strconv.Atoi(args[1])
		target = int64(v)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return errors.New("a DSN is required, use --dsn or the DSN environment variable")
	}

	format, _ := cmd.Flags().GetString("format")

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	m := &migrator{provider: provider, json: format == "json", out: cmd.OutOrStdout()}
	ctx := cmd.Context()

	switch command {
	case "down":
		return m.down(ctx, target)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	default:
		return m.up(ctx)
	}
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is not reachable: %w", err)
	}

	return db, nil
}

func (m *migrator) report(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}

	return nil
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	return m.report(results)
}

func (m *migrator) down(ctx context.Context, target int64) error {
	if target < 0 {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return err
		}
		return m.report([]*goose.MigrationResult{result})
	}

	results, err := m.provider.DownTo(ctx, target)
	if err != nil {
		return err
	}

	return m.report(results)
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	fmt.Fprintln(m.out, "Applied At                  Migration")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(m.out, "%-27s %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]any{"status": state, "version": current}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(m.out, "database version %d: %s\n", current, state)
	}

	if pending {
		return errPendingMigrations
	}

	return nil
}
