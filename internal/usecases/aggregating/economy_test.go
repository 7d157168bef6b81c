package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

// Monthly scenario from the calculator tests: newest first, last is a year ago.
var unemploymentScenario = []float64{4.1, 4.1, 4.2, 4.0, 3.9, 4.0, 4.1, 4.0, 4.1, 3.9, 4.0, 4.2, 3.9}

func economyUpstream() upstream {
	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	return upstream{
		"GDPC1":    series(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), quarters, 23000, 22800),
		"UNRATE":   series(june, months, unemploymentScenario...),
		"CPIAUCSL": series(june, months, unemploymentScenario...),
		"DGS10":    series(lastDay, weeks, 4.35),
		"DGS2":     series(lastDay, weeks, 4.18),
	}
}

func TestEconomyAssemblesAvailableFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestService(t, testDeps{fred: newFetcher(ctrl, economyUpstream(), nil)})

	got, err := svc.Economy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testNow, got.Timestamp)

	gdp := got.Summary.GDP
	assert.Equal(t, 23.0, gdp.Value.Float64)
	assert.Equal(t, 3.5, gdp.Change.Float64)
	assert.Equal(t, "Real GDP (2024-Q3)", gdp.Label)
	assert.Equal(t, []domain.HistoryPoint{
		{Date: "2024-Q2", Value: 22.8},
		{Date: "2024-Q3", Value: 23.0},
	}, got.GDPHistory)

	assert.Equal(t, 5.1, got.Summary.Inflation.Value.Float64)
	assert.False(t, got.Summary.Inflation.Change.Valid, "prior month YoY needs 14 points")

	assert.Equal(t, 4.1, got.Summary.Unemployment.Value.Float64)
	assert.Equal(t, 0.0, got.Summary.Unemployment.Change.Float64)
	assert.False(t, got.Summary.FedFunds.Value.Valid)

	recession := got.RecessionIndicators
	assert.Equal(t, 0.17, recession.CurrentSpread.Float64)
	assert.True(t, recession.YieldInversion.Valid)
	assert.False(t, recession.YieldInversion.Bool)
	assert.Equal(t, 0.23, recession.SahmRule.Float64)
	assert.False(t, recession.SahmTriggered.Bool)
	assert.Equal(t, "falling", recession.UnemploymentTrend.String)

	assert.Equal(t, []domain.YieldPoint{{Maturity: "2Y", Yield: 4.18}, {Maturity: "10Y", Yield: 4.35}}, got.YieldCurve)
	assert.Equal(t, []domain.SpreadPoint{{Date: "Jun 24", Spread: 0.17}}, got.YieldSpreadHistory)

	require.Len(t, got.UnemploymentHistory, 12)
	assert.Equal(t, "Jul 23", got.UnemploymentHistory[0].Date, "history is oldest first")
	assert.Equal(t, "Jun 24", got.UnemploymentHistory[11].Date)

	assert.Equal(t, CPIJan2020, got.CPIJan2020)
	assert.Equal(t, 4.1, got.CPICurrent.Float64)
}

func TestEconomyEmptySeriesOnlyNullDependentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestService(t, testDeps{fred: newFetcher(ctrl, upstream{}, nil)})

	got, err := svc.Economy(context.Background())
	require.NoError(t, err)

	assert.False(t, got.Summary.GDP.Value.Valid)
	assert.False(t, got.Summary.Inflation.Value.Valid)
	assert.False(t, got.RecessionIndicators.SahmRule.Valid)
	assert.False(t, got.RecessionIndicators.YieldInversion.Valid)
	assert.False(t, got.LaborMarket.Jolts.Valid)
	assert.False(t, got.Mortgage30.Valid)
	assert.Equal(t, CPIJan2020, got.CPIJan2020)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"housingData":[]`)
	assert.Contains(t, string(raw), `"yieldCurve":[]`)
	assert.Contains(t, string(raw), `"sahmRule":null`)
	assert.Contains(t, string(raw), `"mortgage30":null`)
}

func TestHousingDataPairsNearestMortgageRate(t *testing.T) {
	starts := []domain.Point{
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Value: 1277},
		{Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Value: 1377},
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1340},
	}
	mortgage := []domain.Point{
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Value: 7.22},
		{Date: time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC), Value: 6.82},
		{Date: time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), Value: 6.79},
	}

	got := housingData(starts, mortgage)

	assert.Equal(t, []domain.HousingPoint{
		{Date: "Apr 24", Starts: 1.377, Mortgage: 6.82},
		{Date: "May 24", Starts: 1.277, Mortgage: 7.22},
	}, got)
}

func TestInflationHistoryPairsByPosition(t *testing.T) {
	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cpi := calc.Filter(series(june, months, append([]float64{102, 101}, repeat(100, 12)...)...))
	pce := calc.Filter(series(june, months, append([]float64{101}, repeat(100, 12)...)...))

	got := inflationHistory(cpi, pce)

	require.Len(t, got, 1, "only the newest month has a PCE comparison")
	assert.Equal(t, domain.InflationPoint{Date: "Jun 24", CPI: 2, PCE: 1}, got[0])
}

func TestEconomyIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	fred := newFetcher(ctrl, economyUpstream(), nil)

	first, _ := newTestService(t, testDeps{fred: fred})
	second, _ := newTestService(t, testDeps{fred: fred})

	a, err := first.Economy(context.Background())
	require.NoError(t, err)
	b, err := second.Economy(context.Background())
	require.NoError(t, err)

	rawA, _ := json.Marshal(a)
	rawB, _ := json.Marshal(b)
	assert.JSONEq(t, string(rawA), string(rawB))
	assert.Equal(t, rawA, rawB)
}
