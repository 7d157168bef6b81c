package main

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/internal/api"
	"github.com/vfg2006/econ-pulse-api/internal/app"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	app.ConfigureLogger(cfg)
	logrus.Infof("api: log level %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()

	application, err := app.New(ctx, cfg, clock, observability.NewMetrics())
	if err != nil {
		logrus.WithError(err).Fatal("api: wiring failed")
	}
	defer func() {
		if err := application.Close(); err != nil {
			logrus.WithError(err).Warn("api: closing cache")
		}
	}()

	application.StartJobs(ctx)

	server, err := api.New(
		cfg,
		application.Aggregator,
		application.Briefer,
		application.Authenticator,
		application.CronJobs(),
		clock,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
