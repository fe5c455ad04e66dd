// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/club-access/internal/types"
	"github.com/canonical/club-access/pkg/entitlement"
)

var entitlementCmd = &cobra.Command{
	Use:   "entitlement",
	Short: "Evaluate the entitlement of a club offline",
	Long:  `Evaluate trial and subscription state from a club's billing fields without touching the database.`,
	Example: `  club-access entitlement --created-at 2026-03-10 --now 2026-03-15T12:00:00Z
  club-access entitlement --created-at 2026-01-01 --status active --plan pro`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		createdAt, _ := cmd.Flags().GetString("created-at")
		status, _ := cmd.Flags().GetString("status")
		plan, _ := cmd.Flags().GetString("plan")
		now, _ := cmd.Flags().GetString("now")

		st, err := evaluateEntitlement(createdAt, status, plan, now)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(st)
	},
}

func init() {
	entitlementCmd.Flags().String("created-at", "", "Club creation time, RFC3339 or YYYY-MM-DD")
	entitlementCmd.Flags().String("status", "", "Subscription status (trial, active, cancelled)")
	entitlementCmd.Flags().String("plan", "", "Subscription plan")
	entitlementCmd.Flags().String("now", "", "Evaluation time, RFC3339 or YYYY-MM-DD, defaults to the current time")
	_ = entitlementCmd.MarkFlagRequired("created-at")

	rootCmd.AddCommand(entitlementCmd)
}

func evaluateEntitlement(createdAt, status, plan, now string) (types.EntitlementState, error) {
	created, err := parseTime(createdAt)
	if err != nil {
		return types.EntitlementState{}, fmt.Errorf("invalid --created-at: %w", err)
	}

	at := time.Now()
	if now != "" {
		if at, err = parseTime(now); err != nil {
			return types.EntitlementState{}, fmt.Errorf("invalid --now: %w", err)
		}
	}

	b := types.Billing{CreatedAt: created}
	if status != "" {
		b.SubscriptionStatus = &status
	}
	if plan != "" {
		b.SubscriptionPlan = &plan
	}

	return entitlement.Compute(b, at), nil
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, v)
}
