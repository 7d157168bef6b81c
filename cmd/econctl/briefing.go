package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/econ-pulse-api/internal/app"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
)

func newBriefingCmd() *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Print today's briefing, generating it if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				return runBriefing(ctx, cmd, a.Briefer, regenerate)
			})
		},
	}

	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "Replace the stored briefing for today")
	return cmd
}

func runBriefing(ctx context.Context, cmd *cobra.Command, briefer briefing.Briefer, regenerate bool) error {
	var (
		result *domain.Briefing
		err    error
	)
	if regenerate {
		result, err = briefer.GenerateDaily(ctx)
	} else {
		result, err = briefer.GetBriefing(ctx)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  (model %s, cached %t)\n\n", result.Date, result.Model, result.Cached)
	fmt.Fprintln(out, result.Briefing)
	return nil
}
