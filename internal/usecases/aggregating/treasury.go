package aggregating

import (
	"cmp"
	"context"
	"math"
	"slices"
	"sync"

	"github.com/guregu/null/v6"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const (
	topInterestRates = 10
	trillion         = 1e12
	billion          = 1e9
	auctionTBD       = "TBD"
)

type fiscalData struct {
	debt        []domain.DebtToPenny
	outstanding []domain.DebtOutstanding
	rates       []domain.AverageInterestRate
	auctions    []domain.Auction
}

func (s *Service) assembleTreasury(ctx context.Context) (*domain.TreasurySummary, error) {
	specs, err := s.catalog.Dashboard(DashboardTreasury)
	if err != nil {
		return nil, err
	}

	var (
		wg   sync.WaitGroup
		snap Snapshot
		data fiscalData
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		snap = s.pipeline.Collect(ctx, specs)
	}()

	if s.fiscal != nil {
		wg.Add(4)
		go func() {
			defer wg.Done()
			data.debt = s.fiscal.DebtToPenny(ctx)
		}()
		go func() {
			defer wg.Done()
			data.outstanding = s.fiscal.DebtOutstanding(ctx)
		}()
		go func() {
			defer wg.Done()
			data.rates = s.fiscal.AverageInterestRates(ctx)
		}()
		go func() {
			defer wg.Done()
			data.auctions = s.fiscal.UpcomingAuctions(ctx)
		}()
	}
	wg.Wait()

	debt := totalDebt(data.debt)
	rates := latestInterestRates(data.rates)

	var rateValues []null.Float
	for _, r := range rates {
		rateValues = append(rateValues, null.FloatFrom(r.Rate))
	}
	avgRate := calc.Mean(rateValues...)

	// GDP is published in billions of dollars.
	gdp := calc.Scale(calc.Latest(snap.Series("gdp")), billion)
	debtToGDP := null.Float{}
	if debt.Value.Valid && gdp.Valid && gdp.Float64 != 0 {
		debtToGDP = calc.Finite(debt.Value.Float64 / gdp.Float64 * 100)
	}

	annualInterest := null.Float{}
	if debt.Value.Valid && avgRate.Valid {
		annualInterest = calc.Finite(debt.Value.Float64 * avgRate.Float64 / 100)
	}

	return &domain.TreasurySummary{
		Timestamp: s.clock.Now().UTC(),
		Summary: domain.TreasuryHeadlines{
			TotalDebt:       debt,
			DebtToGDP:       figure(debtToGDP, percentFormatter(1)),
			AnnualInterest:  figure(annualInterest, currencyFormatter(2)),
			AvgInterestRate: figure(avgRate, percentFormatter(2)),
		},
		DebtHistory:       debtHistory(data.debt),
		AnnualDebtHistory: annualDebtHistory(data.outstanding),
		DebtByType:        debtByType(data.debt),
		InterestRates:     rates[:min(topInterestRates, len(rates))],
		UpcomingAuctions:  upcomingAuctions(data.auctions),
	}, nil
}

func totalDebt(records []domain.DebtToPenny) domain.TotalDebt {
	if len(records) == 0 {
		return domain.TotalDebt{}
	}

	latest := records[0]
	total := latest.TotalPublicDebt.Float

	var change null.Float
	if len(records) > 1 {
		change = calc.Delta(total, records[1].TotalPublicDebt.Float)
	}

	out := domain.TotalDebt{
		Value:     total,
		Formatted: formatted(total, currencyFormatter(2)),
		Change:    change,
	}
	if change.Valid {
		out.ChangeFormatted = null.StringFrom(utils.FormatCompactCurrency(math.Abs(change.Float64), 1))
	}
	if latest.RecordDate != "" {
		out.Date = null.StringFrom(latest.RecordDate)
	}
	return out
}

func debtHistory(records []domain.DebtToPenny) []domain.HistoryPoint {
	out := make([]domain.HistoryPoint, 0, len(records))
	for _, r := range records {
		if !r.TotalPublicDebt.Valid {
			continue
		}
		out = append(out, domain.HistoryPoint{
			Date:  r.RecordDate,
			Value: utils.RoundTo(r.TotalPublicDebt.Float64/trillion, 3),
		})
	}
	slices.Reverse(out)
	return out
}

func annualDebtHistory(records []domain.DebtOutstanding) []domain.HistoryPoint {
	out := make([]domain.HistoryPoint, 0, len(records))
	for _, r := range records {
		if !r.DebtOutstanding.Valid {
			continue
		}
		out = append(out, domain.HistoryPoint{
			Date:  r.RecordDate,
			Value: utils.RoundTo(r.DebtOutstanding.Float64/trillion, 3),
		})
	}
	slices.Reverse(out)
	return out
}

// debtByType splits the latest total into public and intragovernmental
// holdings. Empty unless both are reported.
func debtByType(records []domain.DebtToPenny) []domain.DebtComponent {
	out := []domain.DebtComponent{}
	if len(records) == 0 {
		return out
	}

	latest := records[0]
	if !latest.DebtHeldByPublic.Valid || !latest.IntragovHoldings.Valid {
		return out
	}

	return append(out,
		domain.DebtComponent{
			Type:      "Debt Held by Public",
			Amount:    latest.DebtHeldByPublic.Float64,
			Formatted: utils.FormatCompactCurrency(latest.DebtHeldByPublic.Float64, 2),
		},
		domain.DebtComponent{
			Type:      "Intragovernmental",
			Amount:    latest.IntragovHoldings.Float64,
			Formatted: utils.FormatCompactCurrency(latest.IntragovHoldings.Float64, 2),
		},
	)
}

// latestInterestRates keeps the positive rates of the newest record date,
// highest first.
func latestInterestRates(records []domain.AverageInterestRate) []domain.InterestRate {
	out := []domain.InterestRate{}
	if len(records) == 0 {
		return out
	}

	latestDate := records[0].RecordDate
	for _, r := range records {
		if r.RecordDate != latestDate || !r.AvgInterestRate.Valid || r.AvgInterestRate.Float64 <= 0 {
			continue
		}
		out = append(out, domain.InterestRate{Type: r.SecurityDesc, Rate: r.AvgInterestRate.Float64})
	}

	slices.SortStableFunc(out, func(a, b domain.InterestRate) int {
		return cmp.Compare(b.Rate, a.Rate)
	})
	return out
}

func upcomingAuctions(records []domain.Auction) []domain.UpcomingAuction {
	out := make([]domain.UpcomingAuction, 0, len(records))
	for _, a := range records {
		if a.AuctionDate == "" {
			continue
		}

		auction := domain.UpcomingAuction{
			Date:   a.AuctionDate,
			Type:   a.SecurityType,
			Term:   a.SecurityTerm,
			Amount: auctionTBD,
		}
		if amount := a.OfferingAmount; amount.Valid && amount.Float64 != 0 {
			auction.Amount = utils.FormatCompactCurrency(amount.Float64, 1)
			auction.RawAmount = amount.Float64
		}
		out = append(out, auction)
	}
	return out
}

func figure(v null.Float, format func(float64) string) domain.Figure {
	return domain.Figure{Value: v, Formatted: formatted(v, format)}
}

func formatted(v null.Float, format func(float64) string) null.String {
	if !v.Valid {
		return null.String{}
	}
	return null.StringFrom(format(v.Float64))
}

func percentFormatter(places int32) func(float64) string {
	return func(v float64) string {
		return utils.FormatFixed(v, places) + "%"
	}
}

func currencyFormatter(places int32) func(float64) string {
	return func(v float64) string {
		return utils.FormatCompactCurrency(v, places)
	}
}
