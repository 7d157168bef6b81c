package main

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/econ-pulse-api/internal/app"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

var (
	flagTimeout time.Duration
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "econctl",
		Short:         "Operate the econ-pulse API from a terminal",
		Long:          "Assemble dashboards, generate briefings and issue admin tokens with the same configuration as the API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "Overall deadline for the command")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newSnapshotCmd(),
		newBriefingCmd(),
		newWarmCmd(),
		newTokenCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	app.ConfigureLogger(cfg)
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else if logrus.GetLevel() > logrus.WarnLevel {
		// Keep stdout clean for piping into jq.
		logrus.SetLevel(logrus.WarnLevel)
	}
	return cfg, nil
}

// withApp loads configuration, wires the application and runs fn under the
// command deadline.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	a, err := app.New(ctx, cfg, clockwork.NewRealClock(), nil)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
