// Package app wires configuration, integrations, cache and usecases into a
// runnable service. Both cmd/api and cmd/econctl build on it.
package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/infrastructure/cache"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/claude"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/eia"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/eia/eiaclient"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fiscaldata"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fiscaldata/fiscalclient"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fred"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fred/fredclient"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/hud"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/hud/hudclient"
	"github.com/vfg2006/econ-pulse-api/internal/api/handler"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/authenticating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
)

type App struct {
	Config        *config.Config
	Clock         clockwork.Clock
	Metrics       *observability.Metrics
	Cache         cache.Store
	Aggregator    *aggregating.Service
	Briefer       *briefing.Service
	Authenticator authenticating.Authenticator
	Jobs          []*scheduler.SyncService
}

// New builds every component. metrics may be nil.
func New(ctx context.Context, cfg *config.Config, clock clockwork.Clock, metrics *observability.Metrics) (*App, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	store, err := cache.New(ctx, cfg.Cache, clock)
	if err != nil {
		return nil, errors.Wrap(err, "app: cache")
	}

	logrus.WithField("driver", cfg.Cache.Driver).Info("app: response cache ready")

	fredService := fred.New(cfg, fredclient.NewClient(cfg), metrics)
	eiaService := eia.New(cfg, eiaclient.NewClient(cfg), metrics)
	fiscalService := fiscaldata.New(cfg, fiscalclient.NewClient(cfg), metrics)
	hudService := hud.New(cfg, hudclient.NewClient(cfg), metrics)

	if !eiaService.Configured() {
		logrus.Warn("app: EIA_API_KEY not set, gas prices will be unavailable")
	}
	if cfg.HUD.APIKey == "" {
		logrus.Warn("app: HUD_API_KEY not set, local rent data will be unavailable")
	}

	catalog, err := aggregating.DefaultCatalog()
	if err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "app: loading catalog")
	}

	aggregator := aggregating.NewService(
		cfg,
		catalog,
		aggregating.NewPipeline(fredService, eiaService),
		fiscalService,
		hudService,
		store,
		clock,
		metrics,
	)

	briefer := briefing.NewService(cfg, aggregator, claude.New(cfg, metrics), store, clock, metrics)

	jobs := []*scheduler.SyncService{
		scheduler.NewBriefingSync(cfg, briefer, clock, metrics),
		scheduler.NewDashboardWarmup(cfg, aggregator, clock, metrics),
	}
	if purger, ok := store.(cache.Purger); ok {
		jobs = append(jobs, scheduler.NewCachePurge(cfg, purger, clock, metrics))
	}

	return &App{
		Config:        cfg,
		Clock:         clock,
		Metrics:       metrics,
		Cache:         store,
		Aggregator:    aggregator,
		Briefer:       briefer,
		Authenticator: authenticating.NewService(cfg, clock),
		Jobs:          jobs,
	}, nil
}

// StartJobs schedules every enabled job until ctx is cancelled.
func (a *App) StartJobs(ctx context.Context) {
	for _, job := range a.Jobs {
		if err := job.Start(ctx); err != nil {
			logrus.WithFields(logrus.Fields{
				"job":   job.Name(),
				"error": err.Error(),
			}).Error("app: job not scheduled")
		}
	}
}

func (a *App) Job(name string) *scheduler.SyncService {
	for _, job := range a.Jobs {
		if job.Name() == name {
			return job
		}
	}
	return nil
}

func (a *App) CronJobs() []handler.CronJob {
	jobs := make([]handler.CronJob, len(a.Jobs))
	for i, job := range a.Jobs {
		jobs[i] = job
	}
	return jobs
}

func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}

// ConfigureLogger sets the logrus formatter and level. Production gets JSON.
func ConfigureLogger(cfg *config.Config) {
	if cfg.App.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("app: invalid log level %q, using info", cfg.App.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
