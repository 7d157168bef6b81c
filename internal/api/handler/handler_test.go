package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/econ-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
	aggmocks "github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
	briefmocks "github.com/vfg2006/econ-pulse-api/internal/usecases/briefing/mocks"
	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
)

var testNow = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestDashboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := aggmocks.NewMockAggregator(ctrl)
	rt := router.New(router.WithRoutes(Dashboards(aggregator)...))

	aggregator.EXPECT().Economy(gomock.Any()).Return(&domain.EconomicSummary{Timestamp: testNow, CPIJan2020: 257.971}, nil)
	aggregator.EXPECT().Glance(gomock.Any()).Return(&domain.GlanceSummary{Timestamp: testNow}, nil)
	aggregator.EXPECT().Treasury(gomock.Any()).Return(&domain.TreasurySummary{Timestamp: testNow}, nil)
	aggregator.EXPECT().Prices(gomock.Any()).Return(&domain.PriceSummary{Timestamp: testNow}, nil)

	tests := []struct {
		path         string
		cacheControl string
	}{
		{"/v1/economy", dashboardCacheControl},
		{"/v1/summary", dashboardCacheControl},
		{"/v1/treasury", dashboardCacheControl},
		{"/v1/prices", pricesCacheControl},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(rt, http.MethodGet, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.cacheControl, rec.Header().Get("Cache-Control"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "2024-07-01T09:30:00Z", body["timestamp"])
		})
	}
}

func TestDashboardFailureIsGeneric(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := aggmocks.NewMockAggregator(ctrl)
	aggregator.EXPECT().Economy(gomock.Any()).Return(nil, errors.New("economy: assembly failed: index out of range"))

	rec := serve(GetEconomy(aggregator), http.MethodGet, "/v1/economy")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
	assert.NotContains(t, rec.Body.String(), "index out of range")
	assert.Equal(t, apiErrors.ErrInternalServer, errorCode(t, rec))
}

func TestHousingZipValidation(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantZip    string
		wantStatus int
	}{
		{"no zip", "/v1/housing", "", http.StatusOK},
		{"valid zip", "/v1/housing?zip=20001", "20001", http.StatusOK},
		{"too short", "/v1/housing?zip=2000", "", http.StatusBadRequest},
		{"not numeric", "/v1/housing?zip=2000a", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			aggregator := aggmocks.NewMockAggregator(ctrl)
			if tt.wantStatus == http.StatusOK {
				aggregator.EXPECT().
					Housing(gomock.Any(), tt.wantZip).
					Return(&domain.HousingSummary{Timestamp: testNow, Zip: tt.wantZip, Mortgage30: null.FloatFrom(6.86)}, nil)
			}

			rec := serve(GetHousing(aggregator), http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
			}
		})
	}
}

func TestGetBriefing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		briefer := briefmocks.NewMockBriefer(ctrl)
		briefer.EXPECT().GetBriefing(gomock.Any()).Return(&domain.Briefing{
			ID:       "abc123",
			Briefing: "Steady growth.",
			Date:     "2024-07-01",
			Cached:   true,
		}, nil)

		rec := serve(GetBriefing(briefer), http.MethodGet, "/v1/briefing")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body domain.Briefing
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Steady growth.", body.Briefing)
		assert.True(t, body.Cached)
	})

	t.Run("fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		briefer := briefmocks.NewMockBriefer(ctrl)
		briefer.EXPECT().GetBriefing(gomock.Any()).Return(&domain.Briefing{
			Briefing: domain.FallbackBriefing,
			Date:     "2024-07-01",
			Fallback: true,
		}, errors.New("briefing: generating narrative: 529 overloaded"))

		rec := serve(GetBriefing(briefer), http.MethodGet, "/v1/briefing")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body briefingFailure
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Fallback)
		assert.Equal(t, domain.FallbackBriefing, body.Briefing)
		assert.Equal(t, "2024-07-01", body.Date)
		assert.Equal(t, apiErrors.ErrInternalServer, body.Code)
		assert.NotContains(t, rec.Body.String(), "overloaded")
	})
}

func TestGetLatestBriefing(t *testing.T) {
	ctrl := gomock.NewController(t)
	briefer := briefmocks.NewMockBriefer(ctrl)

	briefer.EXPECT().Latest(gomock.Any()).Return(nil, briefing.ErrNoBriefing)
	rec := serve(GetLatestBriefing(briefer), http.MethodGet, "/v1/briefing/latest")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	briefer.EXPECT().Latest(gomock.Any()).Return(&domain.Briefing{ID: "abc123", Date: "2024-06-30"}, nil)
	rec = serve(GetLatestBriefing(briefer), http.MethodGet, "/v1/briefing/latest")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-06-30")
}

type fakeJob struct {
	name      string
	err       error
	triggered int
}

func (f *fakeJob) Name() string { return f.name }

func (f *fakeJob) TriggerManualSync() error {
	if f.err != nil {
		return f.err
	}
	f.triggered++
	return nil
}

func (f *fakeJob) GetStatus() scheduler.JobStatus {
	return scheduler.JobStatus{Name: f.name, Enabled: true, Runs: f.triggered}
}

func cronRouter(jobs ...CronJob) http.Handler {
	return router.New(router.WithRoutes(
		router.Route{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(jobs)},
		router.Route{Path: "/v1/cron/:type/status", Method: http.MethodGet, Handler: GetCronStatus(jobs)},
	))
}

func TestRunCronJob(t *testing.T) {
	briefingJob := &fakeJob{name: scheduler.JobBriefing}
	busy := &fakeJob{name: scheduler.JobDashboardWarmup, err: scheduler.ErrJobRunning}
	rt := cronRouter(briefingJob, busy)

	rec := serve(rt, http.MethodPost, "/v1/cron/briefing/run")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, briefingJob.triggered)

	rec = serve(rt, http.MethodPost, "/v1/cron/dashboard-warmup/run")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrJobRunning, errorCode(t, rec))

	rec = serve(rt, http.MethodPost, "/v1/cron/unknown/run")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(rt, http.MethodPost, "/v1/cron/all/run")
	require.Equal(t, http.StatusAccepted, rec.Code)
	var body runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{scheduler.JobBriefing}, body.Started)
	assert.Equal(t, []string{scheduler.JobDashboardWarmup}, body.Skipped)
	assert.Equal(t, 2, briefingJob.triggered)
}

func TestGetCronStatus(t *testing.T) {
	rt := cronRouter(&fakeJob{name: scheduler.JobBriefing, triggered: 3}, &fakeJob{name: scheduler.JobDashboardWarmup})

	rec := serve(rt, http.MethodGet, "/v1/cron/all/status")
	require.Equal(t, http.StatusOK, rec.Code)
	var all map[string]scheduler.JobStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)
	assert.Equal(t, 3, all[scheduler.JobBriefing].Runs)

	rec = serve(rt, http.MethodGet, "/v1/cron/briefing/status")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(rt, http.MethodGet, "/v1/cron/nope/status")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthcheckAndNotFound(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(clockwork.NewFakeClockAt(testNow))...))

	rec := serve(rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(rt, http.MethodGet, "/v1/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec))

	rec = serve(rt, http.MethodPost, "/healthcheck")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
