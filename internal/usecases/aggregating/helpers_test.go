package aggregating

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/jonboulle/clockwork"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/econ-pulse-api/infrastructure/cache"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating/mocks"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var testNow = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

// upstream maps a series id to its newest first observations.
type upstream map[string][]domain.Observation

// series builds newest first observations spaced by step from end.
func series(end time.Time, step func(time.Time, int) time.Time, values ...float64) []domain.Observation {
	out := make([]domain.Observation, len(values))
	for i, v := range values {
		out[i] = domain.Observation{
			Date:  step(end, i).Format("2006-01-02"),
			Value: strconv.FormatFloat(v, 'f', -1, 64),
		}
	}
	return out
}

func months(end time.Time, i int) time.Time   { return end.AddDate(0, -i, 0) }
func quarters(end time.Time, i int) time.Time { return end.AddDate(0, -3*i, 0) }
func weeks(end time.Time, i int) time.Time    { return end.AddDate(0, 0, -7*i) }

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// newFetcher serves data by series id, honouring the limit, and counts calls.
func newFetcher(ctrl *gomock.Controller, data upstream, calls *atomic.Int64) *mocks.MockSeriesFetcher {
	fetcher := mocks.NewMockSeriesFetcher(ctrl)
	fetcher.EXPECT().
		FetchSeries(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, limit int) []domain.Observation {
			if calls != nil {
				calls.Add(1)
			}
			seq := data[id]
			if len(seq) > limit {
				seq = seq[:limit]
			}
			return seq
		}).
		AnyTimes()
	return fetcher
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{
			TTL:       5 * time.Minute,
			PricesTTL: time.Hour,
		},
		Housing: config.Housing{
			ReferenceHomePrice: 400000,
			DownPaymentPct:     20,
		},
	}
}

type testDeps struct {
	fred    SeriesFetcher
	eia     SeriesFetcher
	fiscal  FiscalSource
	housing HousingSource
	store   cache.Store
}

func newTestService(t *testing.T, deps testDeps) (*Service, *clockwork.FakeClock) {
	t.Helper()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(testNow)
	svc := NewService(
		testConfig(),
		catalog,
		NewPipeline(deps.fred, deps.eia),
		deps.fiscal,
		deps.housing,
		deps.store,
		clock,
		observability.NewMetricsForTesting(),
	)
	return svc, clock
}

func flex(v float64) domain.FlexFloat {
	return domain.FlexFloat{Float: null.FloatFrom(v)}
}
