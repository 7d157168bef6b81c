package aggregating

import (
	"context"
	"sync"

	"github.com/guregu/null/v6"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

func (s *Service) assembleHousing(ctx context.Context, zip string) (*domain.HousingSummary, error) {
	specs, err := s.catalog.Dashboard(DashboardHousing)
	if err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		snap   Snapshot
		fmr    *domain.FairMarketRent
		limits *domain.IncomeLimits
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		snap = s.pipeline.Collect(ctx, specs)
	}()

	if zip != "" && s.housing != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			fmr = s.housing.FairMarketRent(ctx, zip)
		}()
		go func() {
			defer wg.Done()
			limits = s.housing.IncomeLimits(ctx, zip)
		}()
	}
	wg.Wait()

	mortgage30 := snap.Series("mortgage30")
	rate30 := calc.Latest(mortgage30)

	summary := &domain.HousingSummary{
		Timestamp:     s.clock.Now().UTC(),
		Zip:           zip,
		Mortgage30:    rate30,
		Mortgage15:    calc.Latest(snap.Series("mortgage15")),
		Mortgage30YoY: calc.Round(calc.Delta(rate30, calc.AtOffset(mortgage30, calc.WeeksPerYear)), 2),
		FMR:           fmr,
		IncomeLimits:  limits,
		Affordability: s.affordability(rate30, fmr, limits),
	}
	if day := period(mortgage30, utils.FormatDay); day != "" {
		summary.MortgageDate.SetValid(day)
	}

	return summary, nil
}

// affordability is nil when neither a payment nor a rent ratio can be derived.
func (s *Service) affordability(rate30 null.Float, fmr *domain.FairMarketRent, limits *domain.IncomeLimits) *domain.Affordability {
	price := s.cfg.Housing.ReferenceHomePrice
	principal := price * (1 - s.cfg.Housing.DownPaymentPct/100)
	payment := calc.MonthlyPayment(principal, rate30, calc.MortgageTermMonths)

	var income, rent null.Float
	if limits != nil {
		income = limits.MedianIncome
	}
	if fmr != nil {
		rent = fmr.TwoBedroom()
	}

	rentToIncome := calc.ShareOfIncome(rent, income)
	if !payment.Valid && !rentToIncome.Valid {
		return nil
	}

	return &domain.Affordability{
		RentToIncome:    calc.Round(rentToIncome, 1),
		ReferencePrice:  price,
		MonthlyPayment:  calc.Round(payment, 2),
		PaymentToIncome: calc.Round(calc.ShareOfIncome(payment, income), 1),
	}
}
