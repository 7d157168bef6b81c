package aggregating

import (
	"context"
	"time"

	"github.com/guregu/null/v6"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const pricePlaces = 3

func (s *Service) assemblePrices(ctx context.Context) (*domain.PriceSummary, error) {
	specs, err := s.catalog.Dashboard(DashboardPrices)
	if err != nil {
		return nil, err
	}
	snap := s.pipeline.Collect(ctx, specs)

	summary := &domain.PriceSummary{
		Timestamp: s.clock.Now().UTC(),
		Food:      []domain.PriceItem{},
		Gas:       []domain.PriceItem{},
	}

	var foodChanges []null.Float
	for _, spec := range specs {
		seq := snap.Series(spec.Key)

		switch spec.Group {
		case GroupGas:
			// Fuel is weekly and optional; a missing series is left out.
			if len(seq) == 0 {
				continue
			}
			summary.Gas = append(summary.Gas, priceItem(spec, seq, calc.WeeksPerYear, utils.FormatDay))
		default:
			item := priceItem(spec, seq, calc.MonthsPerYear, utils.ShortMonthLabel)
			foodChanges = append(foodChanges, item.YoYChange)
			summary.Food = append(summary.Food, item)
		}
	}

	summary.Summary = domain.PriceOverview{
		AvgFoodChange: calc.Round(calc.Mean(foodChanges...), 2),
		GasAvailable:  len(summary.Gas) > 0,
	}
	return summary, nil
}

func priceItem(spec SeriesSpec, seq []domain.Point, lag int, label func(time.Time) string) domain.PriceItem {
	current, yearAgo := calc.Latest(seq), calc.AtOffset(seq, lag)

	item := domain.PriceItem{
		Key:       spec.Key,
		Name:      spec.Name,
		Icon:      spec.Icon,
		Unit:      spec.Unit,
		Current:   current,
		YearAgo:   yearAgo,
		YoYChange: calc.Round(calc.PercentChange(current, yearAgo), 2),
		History:   calc.History(seq, calc.HistoryOptions{Points: historyPoints, Label: label, Places: pricePlaces}),
	}
	if day := period(seq, utils.FormatDay); day != "" {
		item.Date = null.StringFrom(day)
	}
	return item
}
