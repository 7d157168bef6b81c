package aggregating

import (
	"context"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

// SeriesFetcher returns the newest observations of a series, newest first.
// Failures yield an empty slice, never an error.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, seriesID string, limit int) []domain.Observation
}

// FiscalSource serves the Treasury datasets. Failures yield empty slices.
type FiscalSource interface {
	DebtToPenny(ctx context.Context) []domain.DebtToPenny
	DebtOutstanding(ctx context.Context) []domain.DebtOutstanding
	AverageInterestRates(ctx context.Context) []domain.AverageInterestRate
	UpcomingAuctions(ctx context.Context) []domain.Auction
}

// HousingSource serves local rent and income figures. Failures yield nil.
type HousingSource interface {
	FairMarketRent(ctx context.Context, zip string) *domain.FairMarketRent
	IncomeLimits(ctx context.Context, zip string) *domain.IncomeLimits
}

// Aggregator assembles the dashboards. Results are read through the cache.
type Aggregator interface {
	Economy(ctx context.Context) (*domain.EconomicSummary, error)
	Glance(ctx context.Context) (*domain.GlanceSummary, error)
	Housing(ctx context.Context, zip string) (*domain.HousingSummary, error)
	Treasury(ctx context.Context) (*domain.TreasurySummary, error)
	Prices(ctx context.Context) (*domain.PriceSummary, error)

	// Dashboard assembles a dashboard by name, housing without a zip.
	Dashboard(ctx context.Context, name string) (any, error)

	// Warm recomputes every dashboard, bypassing cached entries.
	Warm(ctx context.Context) error
}
