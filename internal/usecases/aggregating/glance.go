package aggregating

import (
	"context"
	"time"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

func (s *Service) assembleGlance(ctx context.Context) (*domain.GlanceSummary, error) {
	specs, err := s.catalog.Dashboard(DashboardSummary)
	if err != nil {
		return nil, err
	}
	snap := s.pipeline.Collect(ctx, specs)

	gdp := snap.Series("gdp")
	unemployment := snap.Series("unemployment")
	cpi := snap.Series("cpi")
	fedFunds := snap.Series("fed_funds")
	sentiment := snap.Series("sentiment")
	foodCPI := snap.Series("food_cpi")
	mortgage := snap.Series("mortgage30")

	return &domain.GlanceSummary{
		Timestamp: s.clock.Now().UTC(),
		Economy: domain.GlanceEconomy{
			GDP: domain.Headline{
				Value:  calc.Round(calc.Scale(calc.Latest(gdp), 0.001), 2),
				Change: calc.Round(calc.AnnualizedQuarterlyGrowth(gdp), 1),
				Unit:   "T",
				Period: period(gdp, utils.QuarterLabel),
			},
			Unemployment: domain.Headline{
				Value:  calc.Latest(unemployment),
				Change: calc.Round(calc.Delta(calc.Latest(unemployment), calc.AtOffset(unemployment, 1)), 1),
				Unit:   "%",
				Period: period(unemployment, utils.MonthLabel),
			},
			Inflation: domain.Headline{
				Value:  calc.Round(calc.YearOverYearChange(cpi), 1),
				Unit:   "%",
				Label:  "YoY",
				Period: period(cpi, utils.MonthLabel),
			},
			FedRate: domain.Headline{
				Value:  calc.Latest(fedFunds),
				Unit:   "%",
				Period: period(fedFunds, utils.MonthLabel),
			},
		},
		Consumer: domain.GlanceConsumer{
			Sentiment: domain.Headline{
				Value:  calc.Round(calc.Latest(sentiment), 1),
				Change: calc.Round(calc.Delta(calc.Latest(sentiment), calc.AtOffset(sentiment, 1)), 1),
				Period: period(sentiment, utils.MonthLabel),
			},
			Gas: gasHeadline(snap.Series("gas")),
			Food: domain.Headline{
				Value:  calc.Round(calc.YearOverYearChange(foodCPI), 1),
				Unit:   "%",
				Label:  "YoY",
				Period: period(foodCPI, utils.MonthLabel),
			},
			Mortgage: domain.Headline{
				Value:  calc.Round(calc.Latest(mortgage), 2),
				Change: calc.Round(calc.Delta(calc.Latest(mortgage), calc.AtOffset(mortgage, 1)), 2),
				Unit:   "%",
				Period: period(mortgage, utils.MonthLabel),
			},
		},
	}, nil
}

// gasHeadline is nil when no weekly price is available.
func gasHeadline(weekly []domain.Point) *domain.Headline {
	if len(weekly) == 0 {
		return nil
	}

	return &domain.Headline{
		Value:  calc.Round(calc.Latest(weekly), 2),
		Change: calc.Round(calc.YearOverYearChangeAt(weekly, 0, calc.WeeksPerYear), 1),
		Unit:   "/gal",
		Period: period(weekly, utils.FormatDay),
	}
}

func period(seq []domain.Point, label func(time.Time) string) string {
	if len(seq) == 0 {
		return ""
	}
	return label(seq[0].Date)
}
