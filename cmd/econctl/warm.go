package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/econ-pulse-api/internal/app"
	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
)

func newWarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Recompute every dashboard into the configured cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				job := a.Job(scheduler.JobDashboardWarmup)
				if err := job.RunNow(); err != nil {
					return err
				}
				status := job.GetStatus()
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "warmed %s cache at %s\n", a.Config.Cache.Driver, status.LastCompletedAt.Format("2006-01-02 15:04:05"))
				return err
			})
		},
	}
}
