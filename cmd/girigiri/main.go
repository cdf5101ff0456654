// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/girigiri/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "girigiri",
		Short:        "Close race analytics for single-member district results",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(closestCmd())
	rootCmd.AddCommand(tallyCmd())
	rootCmd.AddCommand(districtCmd())

	return rootCmd
}

func importCmd() *cobra.Command {
	var databaseURL, databaseType string

	cmd := &cobra.Command{
		Use:   "import [dataset-file]",
		Short: "Write a JSON or YAML dataset into a SQL store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), args[0], databaseURL, databaseType)
		},
	}

	cmd.Flags().StringVarP(&databaseURL, "database-url", "d", "", "Database URL (default $DATABASE_URL)")
	cmd.Flags().StringVarP(&databaseType, "database-type", "t", "", "sqlite or postgres (default $DATABASE_TYPE or sqlite)")
	return cmd
}

func closestCmd() *cobra.Command {
	var (
		maxMargin int
		party     string
		order     string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "closest [dataset-file]",
		Short: "List districts by margin, closest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := models.DistrictQuery{Party: party, Order: order}
			if cmd.Flags().Changed("max-margin") {
				q.MaxMargin = &maxMargin
			}
			return runClosest(cmd.OutOrStdout(), args[0], q, limit)
		},
	}

	cmd.Flags().IntVar(&maxMargin, "max-margin", 0, "Only districts with margin at most N")
	cmd.Flags().StringVar(&party, "party", models.PartyAll, "Only districts where this party finished second")
	cmd.Flags().StringVar(&order, "order", models.OrderAsc, "Sort order: asc or desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most N districts (0 prints all)")
	return cmd
}

func tallyCmd() *cobra.Command {
	var maxMargin int

	cmd := &cobra.Command{
		Use:   "tally [dataset-file]",
		Short: "Count runner-up finishes per party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bound *int
			if cmd.Flags().Changed("max-margin") {
				bound = &maxMargin
			}
			return runTally(cmd.OutOrStdout(), args[0], bound)
		},
	}

	cmd.Flags().IntVar(&maxMargin, "max-margin", 0, "Only districts with margin at most N")
	return cmd
}

func districtCmd() *cobra.Command {
	var party string

	cmd := &cobra.Command{
		Use:   "district [dataset-file] [district-id]",
		Short: "Show the full breakdown of one district",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistrict(cmd.OutOrStdout(), args[0], args[1], party)
		},
	}

	cmd.Flags().StringVar(&party, "party", models.PartyAll, "Compare against this party's candidate")
	return cmd
}
