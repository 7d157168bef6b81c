package scheduler

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/infrastructure/cache"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
)

const (
	JobBriefing        = "briefing"
	JobDashboardWarmup = "dashboard-warmup"
	JobCachePurge      = "cache-purge"
)

// NewBriefingSync regenerates the daily briefing.
func NewBriefingSync(cfg *config.Config, briefer briefing.Briefer, clock clockwork.Clock, metrics *observability.Metrics) *SyncService {
	return NewSyncService(SyncConfig{
		Name:         JobBriefing,
		CronSchedule: cfg.BriefingSync.CronSchedule,
		Enabled:      cfg.BriefingSync.Enabled,
	}, func(ctx context.Context) error {
		_, err := briefer.GenerateDaily(ctx)
		return err
	}, clock, metrics)
}

// NewDashboardWarmup refreshes every cached dashboard ahead of requests.
func NewDashboardWarmup(cfg *config.Config, aggregator aggregating.Aggregator, clock clockwork.Clock, metrics *observability.Metrics) *SyncService {
	return NewSyncService(SyncConfig{
		Name:         JobDashboardWarmup,
		CronSchedule: cfg.DashboardWarmup.CronSchedule,
		Enabled:      cfg.DashboardWarmup.Enabled,
	}, aggregator.Warm, clock, metrics)
}

// NewCachePurge deletes expired cache entries from stores that do not expire
// them on their own.
func NewCachePurge(cfg *config.Config, purger cache.Purger, clock clockwork.Clock, metrics *observability.Metrics) *SyncService {
	return NewSyncService(SyncConfig{
		Name:         JobCachePurge,
		CronSchedule: cfg.CachePurge.CronSchedule,
		Enabled:      cfg.CachePurge.Enabled,
	}, func(ctx context.Context) error {
		removed, err := purger.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		logrus.WithField("removed", removed).Info("scheduler: expired cache entries purged")
		return nil
	}, clock, metrics)
}
