package aggregating

import (
	"context"
	"slices"
	"time"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

// CPIJan2020 is the CPI-U level of January 2020, the inflation wallet baseline.
const CPIJan2020 = 257.971

const (
	historyPoints       = 12
	housingJoinWindow   = 45 * 24 * time.Hour
	fedFundsPriorOffset = 3
)

var yieldMaturities = []struct {
	Label string
	Key   string
}{
	{"1M", "dgs1mo"},
	{"3M", "dgs3mo"},
	{"6M", "dgs6mo"},
	{"1Y", "dgs1"},
	{"2Y", "dgs2"},
	{"3Y", "dgs3"},
	{"5Y", "dgs5"},
	{"7Y", "dgs7"},
	{"10Y", "dgs10"},
	{"20Y", "dgs20"},
	{"30Y", "dgs30"},
}

func (s *Service) assembleEconomy(ctx context.Context) (*domain.EconomicSummary, error) {
	specs, err := s.catalog.Dashboard(DashboardEconomy)
	if err != nil {
		return nil, err
	}
	snap := s.pipeline.Collect(ctx, specs)

	gdp := snap.Series("gdp")
	unemployment := snap.Series("unemployment")
	cpi := snap.Series("cpi")
	dgs10, dgs2 := snap.Series("dgs10"), snap.Series("dgs2")

	spread := calc.Spread(calc.Latest(dgs10), calc.Latest(dgs2))
	sahm := calc.SahmRuleDelta(unemployment)

	return &domain.EconomicSummary{
		Timestamp:           s.clock.Now().UTC(),
		Summary:             economyHeadlines(snap),
		GDPHistory:          calc.History(gdp, calc.HistoryOptions{Points: len(gdp), Label: utils.QuarterKey, Scale: 0.001, Places: 3}),
		UnemploymentHistory: calc.History(unemployment, calc.HistoryOptions{Points: historyPoints, Places: 2}),
		InflationHistory:    inflationHistory(cpi, snap.Series("pce")),
		YieldCurve:          yieldCurve(snap),
		YieldSpreadHistory:  spreadHistory(dgs10, dgs2),
		HousingData:         housingData(snap.Series("housing_starts"), snap.Series("mortgage30")),
		LaborMarket: domain.LaborMarket{
			Jolts:         calc.Round(calc.Scale(calc.Latest(snap.Series("jolts")), 0.001), 2),
			Quits:         calc.Latest(snap.Series("quits")),
			Hires:         calc.Round(calc.Scale(calc.Latest(snap.Series("hires")), 0.001), 1),
			Participation: calc.Latest(snap.Series("participation")),
		},
		RecessionIndicators: domain.RecessionIndicators{
			SahmRule:          calc.Round(sahm, 2),
			SahmTriggered:     calc.SahmTriggered(sahm),
			YieldInversion:    calc.Inverted(spread),
			CurrentSpread:     calc.Round(spread, 2),
			UnemploymentTrend: calc.TrendOf(unemployment),
		},
		Mortgage30:        calc.Latest(snap.Series("mortgage30")),
		CPICurrent:        calc.Latest(cpi),
		CPIJan2020:        CPIJan2020,
		ConsumerSentiment: consumerSentiment(snap.Series("sentiment")),
	}, nil
}

func economyHeadlines(snap Snapshot) domain.EconomyHeadlines {
	gdp := snap.Series("gdp")
	unemployment := snap.Series("unemployment")
	cpi := snap.Series("cpi")
	fedFunds := snap.Series("fed_funds")

	gdpLabel := "Real GDP (Latest)"
	if len(gdp) > 0 && !gdp[0].Date.IsZero() {
		gdpLabel = "Real GDP (" + utils.QuarterKey(gdp[0].Date) + ")"
	}

	inflation := calc.YearOverYearChange(cpi)
	priorInflation := calc.YearOverYearChangeAt(cpi, 1, calc.MonthsPerYear)

	fedFundsRate := calc.Latest(fedFunds)

	return domain.EconomyHeadlines{
		GDP: domain.Headline{
			Value:  calc.Round(calc.Scale(calc.Latest(gdp), 0.001), 2),
			Change: calc.Round(calc.AnnualizedQuarterlyGrowth(gdp), 1),
			Unit:   "T",
			Label:  gdpLabel,
		},
		Unemployment: domain.Headline{
			Value:  calc.Latest(unemployment),
			Change: calc.Round(calc.Delta(calc.Latest(unemployment), calc.AtOffset(unemployment, 1)), 1),
			Unit:   "%",
			Label:  "Unemployment Rate",
		},
		Inflation: domain.Headline{
			Value:  calc.Round(inflation, 1),
			Change: calc.Round(calc.Delta(inflation, priorInflation), 1),
			Unit:   "%",
			Label:  "CPI (YoY)",
		},
		FedFunds: domain.Headline{
			Value:  fedFundsRate,
			Change: calc.Round(calc.Delta(fedFundsRate, calc.AtOffset(fedFunds, fedFundsPriorOffset)), 2),
			Unit:   "%",
			Label:  "Fed Funds Rate",
		},
	}
}

// inflationHistory pairs CPI and PCE year over year changes by position,
// keeping months where both are available.
func inflationHistory(cpi, pce []domain.Point) []domain.InflationPoint {
	cpiChanges := calc.YoYHistory(cpi, historyPoints, calc.MonthsPerYear)
	pceChanges := calc.YoYHistory(pce, historyPoints, calc.MonthsPerYear)

	out := make([]domain.InflationPoint, 0, len(cpiChanges))
	for i, cpiChange := range cpiChanges {
		if i >= len(pceChanges) {
			break
		}
		pceChange := pceChanges[i]
		if !cpiChange.Valid || !pceChange.Valid {
			continue
		}

		out = append(out, domain.InflationPoint{
			Date: utils.ShortMonthLabel(cpi[i].Date),
			CPI:  utils.RoundTo(cpiChange.Float64, 2),
			PCE:  utils.RoundTo(pceChange.Float64, 2),
		})
	}
	slices.Reverse(out)
	return out
}

func yieldCurve(snap Snapshot) []domain.YieldPoint {
	out := make([]domain.YieldPoint, 0, len(yieldMaturities))
	for _, m := range yieldMaturities {
		yield := calc.Latest(snap.Series(m.Key))
		if !yield.Valid {
			continue
		}
		out = append(out, domain.YieldPoint{Maturity: m.Label, Yield: yield.Float64})
	}
	return out
}

// spreadHistory is the 10Y-2Y spread over the recent days both yields were
// published on the same date.
func spreadHistory(dgs10, dgs2 []domain.Point) []domain.SpreadPoint {
	pairs := calc.NearestDateJoin(calc.Recent(datedOnly(dgs10), historyPoints), datedOnly(dgs2), 0)

	out := make([]domain.SpreadPoint, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.SpreadPoint{
			Date:   utils.ShortMonthLabel(p.A.Date),
			Spread: utils.RoundTo(p.A.Value-p.B.Value, 2),
		})
	}
	slices.Reverse(out)
	return out
}

// housingData pairs monthly starts (in millions) with the nearest weekly
// mortgage rate. Months without a rate within the window are dropped.
func housingData(starts, mortgage []domain.Point) []domain.HousingPoint {
	pairs := calc.NearestDateJoin(calc.Recent(datedOnly(starts), historyPoints), datedOnly(mortgage), housingJoinWindow)

	out := make([]domain.HousingPoint, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.HousingPoint{
			Date:     utils.ShortMonthLabel(p.A.Date),
			Starts:   utils.RoundTo(p.A.Value/1000, 3),
			Mortgage: p.B.Value,
		})
	}
	slices.Reverse(out)
	return out
}

func consumerSentiment(seq []domain.Point) domain.ConsumerSentiment {
	current, prior := calc.Latest(seq), calc.AtOffset(seq, 1)

	return domain.ConsumerSentiment{
		Current: current,
		Prior:   prior,
		Change:  calc.Round(calc.Delta(current, prior), 1),
		History: calc.History(seq, calc.HistoryOptions{Points: historyPoints, Places: 1}),
	}
}

// datedOnly drops points whose date could not be parsed; they can never be
// aligned with another series.
func datedOnly(seq []domain.Point) []domain.Point {
	out := make([]domain.Point, 0, len(seq))
	for _, p := range seq {
		if !p.Date.IsZero() {
			out = append(out, p)
		}
	}
	return out
}
