package fred

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fred/fredclient"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const source = "fred"

// FredService fetches FRED series and never fails: every problem collapses to
// an empty series plus one log line, so a dashboard only loses the fields that
// depend on it.
type FredService struct {
	cfg     *config.Config
	Client  fredclient.Client
	metrics *observability.Metrics
}

func New(cfg *config.Config, client fredclient.Client, metrics *observability.Metrics) *FredService {
	return &FredService{
		cfg:     cfg,
		Client:  client,
		metrics: metrics,
	}
}

// FetchSeries returns up to limit observations, newest first.
func (s *FredService) FetchSeries(ctx context.Context, seriesID string, limit int) []domain.Observation {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Fred.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.Client.GetObservations(ctx, fredclient.ObservationsParams{
		SeriesID: seriesID,
		Limit:    limit,
	})
	if err != nil {
		s.metrics.ObserveUpstream(source, "error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"series_id": seriesID,
			"error":     err.Error(),
		}).Warn("fred: fetch failed, series left empty")
		return []domain.Observation{}
	}

	outcome := "success"
	if len(resp.Observations) == 0 {
		outcome = "empty"
	}
	s.metrics.ObserveUpstream(source, outcome, time.Since(start))

	if resp.Observations == nil {
		return []domain.Observation{}
	}
	return resp.Observations
}
