package fiscaldata

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fiscaldata/fiscalclient"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const source = "fiscal_data"

var (
	debtToPennyQuery = fiscalclient.Query{
		Endpoint: "/v2/accounting/od/debt_to_penny",
		Fields:   []string{"record_date", "tot_pub_debt_out_amt", "debt_held_public_amt", "intragov_hold_amt"},
		Sort:     "-record_date",
		Limit:    30,
	}
	debtOutstandingQuery = fiscalclient.Query{
		Endpoint: "/v2/accounting/od/debt_outstanding",
		Fields:   []string{"record_date", "debt_outstanding_amt"},
		Sort:     "-record_date",
		Limit:    12,
	}
	avgInterestRatesQuery = fiscalclient.Query{
		Endpoint: "/v2/accounting/od/avg_interest_rates",
		Fields:   []string{"record_date", "security_type_desc", "security_desc", "avg_interest_rate_amt"},
		Sort:     "-record_date",
		Limit:    50,
	}
	upcomingAuctionsQuery = fiscalclient.Query{
		Endpoint: "/v1/accounting/od/upcoming_auctions",
		Fields:   []string{"record_date", "auction_date", "issue_date", "security_type", "security_term", "offering_amt"},
		Sort:     "-auction_date",
		Limit:    10,
	}
)

// FiscalDataService reads the Treasury datasets behind the debt dashboard.
// Each method is tolerant: on failure it logs and returns an empty slice.
type FiscalDataService struct {
	cfg     *config.Config
	Client  fiscalclient.Client
	metrics *observability.Metrics
}

func New(cfg *config.Config, client fiscalclient.Client, metrics *observability.Metrics) *FiscalDataService {
	return &FiscalDataService{
		cfg:     cfg,
		Client:  client,
		metrics: metrics,
	}
}

func (s *FiscalDataService) DebtToPenny(ctx context.Context) []domain.DebtToPenny {
	records := []domain.DebtToPenny{}
	s.fetch(ctx, debtToPennyQuery, &records)
	return records
}

func (s *FiscalDataService) DebtOutstanding(ctx context.Context) []domain.DebtOutstanding {
	records := []domain.DebtOutstanding{}
	s.fetch(ctx, debtOutstandingQuery, &records)
	return records
}

func (s *FiscalDataService) AverageInterestRates(ctx context.Context) []domain.AverageInterestRate {
	records := []domain.AverageInterestRate{}
	s.fetch(ctx, avgInterestRatesQuery, &records)
	return records
}

func (s *FiscalDataService) UpcomingAuctions(ctx context.Context) []domain.Auction {
	records := []domain.Auction{}
	s.fetch(ctx, upcomingAuctionsQuery, &records)
	return records
}

func (s *FiscalDataService) fetch(ctx context.Context, query fiscalclient.Query, dest any) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FiscalData.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.Client.GetRecords(ctx, query, dest); err != nil {
		s.metrics.ObserveUpstream(source, "error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"endpoint": query.Endpoint,
			"error":    err.Error(),
		}).Warn("fiscal data: fetch failed, dataset left empty")
		return
	}
	s.metrics.ObserveUpstream(source, "success", time.Since(start))
}
