package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vfg2006/econ-pulse-api/internal/app"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

func newSnapshotCmd() *cobra.Command {
	var zip string

	cmd := &cobra.Command{
		Use:       "snapshot <dashboard>",
		Short:     "Print one assembled dashboard as JSON",
		Long:      "Dashboards: " + strings.Join(aggregating.Dashboards, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: aggregating.Dashboards,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				return runSnapshot(ctx, cmd, a.Aggregator, args[0], zip)
			})
		},
	}

	cmd.Flags().StringVar(&zip, "zip", "", "Zip code for the housing dashboard")
	return cmd
}

func runSnapshot(ctx context.Context, cmd *cobra.Command, aggregator aggregating.Aggregator, name, zip string) error {
	if zip != "" && name != aggregating.DashboardHousing {
		return fmt.Errorf("--zip only applies to the %s dashboard", aggregating.DashboardHousing)
	}
	if err := (aggregating.HousingQuery{Zip: zip}).Validate(); err != nil {
		return err
	}

	var (
		body any
		err  error
	)
	if name == aggregating.DashboardHousing && zip != "" {
		body, err = aggregator.Housing(ctx, zip)
	} else {
		body, err = aggregator.Dashboard(ctx, name)
	}
	if err != nil {
		return err
	}

	out, err := utils.PrettyJson(body)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
