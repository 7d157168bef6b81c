package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
)

func testConfig() *config.Config {
	return &config.Config{
		App:        config.App{LogLevel: "debug", Env: "development"},
		Fred:       config.Fred{BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		EIA:        config.EIA{BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		HUD:        config.HUD{BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		FiscalData: config.FiscalData{BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		Anthropic:  config.Anthropic{Model: "claude-sonnet-4-20250514", MaxTokens: 500, Timeout: time.Second},
		Cache: config.Cache{
			Driver:      config.CacheDriverMemory,
			TTL:         5 * time.Minute,
			PricesTTL:   time.Hour,
			BriefingTTL: 48 * time.Hour,
			MaxEntries:  32,
		},
		Auth:            config.Auth{Secret: "s", TokenTTL: time.Hour},
		BriefingSync:    config.BriefingSync{CronSchedule: "0 6 * * *"},
		DashboardWarmup: config.DashboardWarmup{CronSchedule: "*/5 * * * *"},
		CachePurge:      config.CachePurge{CronSchedule: "17 * * * *"},
	}
}

func TestNewWiresEveryComponent(t *testing.T) {
	a, err := New(context.Background(), testConfig(), clockwork.NewFakeClock(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.NotNil(t, a.Aggregator)
	assert.NotNil(t, a.Briefer)
	assert.NotNil(t, a.Authenticator)
	// The memory store keeps expired entries until swept, so it gets a purge job.
	assert.Len(t, a.CronJobs(), 3)
	assert.NotNil(t, a.Job(scheduler.JobBriefing))
	assert.NotNil(t, a.Job(scheduler.JobDashboardWarmup))
	assert.NotNil(t, a.Job(scheduler.JobCachePurge))
	assert.Nil(t, a.Job("unknown"))

	ctx, cancel := context.WithCancel(context.Background())
	a.StartJobs(ctx)
	cancel()
}

func TestNewRejectsUnknownCacheDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Driver = "memcached"

	_, err := New(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	cfg := testConfig()
	ConfigureLogger(cfg)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	cfg.App.LogLevel = "loud"
	ConfigureLogger(cfg)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
