package eia

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/eia/eiaclient"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const (
	source      = "eia"
	defaultArea = "NUS"
)

// EIAService serves weekly fuel prices through the same series contract as
// FRED. Series ids take the form "PRODUCT/AREA", e.g. "EPMR/NUS".
type EIAService struct {
	cfg     *config.Config
	Client  eiaclient.Client
	metrics *observability.Metrics
}

func New(cfg *config.Config, client eiaclient.Client, metrics *observability.Metrics) *EIAService {
	return &EIAService{
		cfg:     cfg,
		Client:  client,
		metrics: metrics,
	}
}

// Configured reports whether an api key is present. Without one every
// series is empty.
func (s *EIAService) Configured() bool {
	return s.cfg.EIA.APIKey != ""
}

func (s *EIAService) FetchSeries(ctx context.Context, seriesID string, limit int) []domain.Observation {
	if !s.Configured() {
		logrus.WithField("series_id", seriesID).Debug("eia: api key not configured, skipping")
		return []domain.Observation{}
	}

	product, area := splitSeriesID(seriesID)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.EIA.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.Client.GetWeeklyPrices(ctx, eiaclient.PriceParams{
		Product: product,
		Area:    area,
		Length:  limit,
	})
	if err != nil {
		s.metrics.ObserveUpstream(source, "error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"series_id": seriesID,
			"error":     err.Error(),
		}).Warn("eia: fetch failed, series left empty")
		return []domain.Observation{}
	}

	observations := resp.Observations()
	outcome := "success"
	if len(observations) == 0 {
		outcome = "empty"
	}
	s.metrics.ObserveUpstream(source, outcome, time.Since(start))

	return observations
}

func splitSeriesID(seriesID string) (product, area string) {
	product, area, found := strings.Cut(seriesID, "/")
	if !found || area == "" {
		return product, defaultArea
	}
	return product, area
}
