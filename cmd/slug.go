// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/canonical/club-access/pkg/tenancy"
)

var slugCmd = &cobra.Command{
	Use:   "slug <name>",
	Short: "Print the slug a club name would get",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(tenancy.Slugify(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
