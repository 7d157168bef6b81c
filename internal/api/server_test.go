package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/econ-pulse-api/internal/api/handler"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
	aggmocks "github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/authenticating"
	briefmocks "github.com/vfg2006/econ-pulse-api/internal/usecases/briefing/mocks"
)

func TestServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC))

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "test-secret", TokenTTL: time.Hour},
	}

	aggregator := aggmocks.NewMockAggregator(ctrl)
	aggregator.EXPECT().Economy(gomock.Any()).Return(&domain.EconomicSummary{Timestamp: clock.Now()}, nil)
	briefer := briefmocks.NewMockBriefer(ctrl)

	authenticator := authenticating.NewService(cfg, clock)
	job := scheduler.NewSyncService(scheduler.SyncConfig{Name: scheduler.JobBriefing}, func(ctx context.Context) error {
		return nil
	}, clock, nil)

	h := NewHandler(cfg, aggregator, briefer, authenticator, []handler.CronJob{job}, clock)

	t.Run("public dashboard with cors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/economy", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("cron requires a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/all/status", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("cron with admin token", func(t *testing.T) {
		token, err := authenticator.IssueToken("ops", domain.RoleAdmin, 0)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/briefing/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"briefing"`)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNewRequiresPort(t *testing.T) {
	_, err := New(&config.Config{}, nil, nil, nil, nil, clockwork.NewFakeClock())
	assert.Error(t, err)
}
