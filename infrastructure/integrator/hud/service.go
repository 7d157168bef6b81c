package hud

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	huddomain "github.com/vfg2006/econ-pulse-api/infrastructure/integrator/hud/domain"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/hud/hudclient"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const source = "hud"

// HUDService resolves local rent and income data for a zip code. Like the
// series fetchers it is tolerant: failures are logged and yield nil.
type HUDService struct {
	cfg     *config.Config
	Client  hudclient.Client
	metrics *observability.Metrics
}

func New(cfg *config.Config, client hudclient.Client, metrics *observability.Metrics) *HUDService {
	return &HUDService{
		cfg:     cfg,
		Client:  client,
		metrics: metrics,
	}
}

func (s *HUDService) FairMarketRent(ctx context.Context, zip string) *domain.FairMarketRent {
	body := s.fetch(ctx, "fmr", zip, s.Client.GetFairMarketRent)
	if body == nil {
		return nil
	}

	fmr, err := huddomain.DecodeFairMarketRent(zip, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{"zip": zip, "error": err.Error()}).Warn("hud: unusable fmr payload")
		return nil
	}
	return fmr
}

func (s *HUDService) IncomeLimits(ctx context.Context, zip string) *domain.IncomeLimits {
	body := s.fetch(ctx, "il", zip, s.Client.GetIncomeLimits)
	if body == nil {
		return nil
	}

	il, err := huddomain.DecodeIncomeLimits(zip, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{"zip": zip, "error": err.Error()}).Warn("hud: unusable income limits payload")
		return nil
	}
	return il
}

func (s *HUDService) fetch(ctx context.Context, dataset, zip string, get func(context.Context, string) ([]byte, error)) []byte {
	if s.cfg.HUD.APIKey == "" {
		logrus.WithField("zip", zip).Debug("hud: api key not configured, skipping")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.HUD.Timeout)
	defer cancel()

	start := time.Now()
	body, err := get(ctx, zip)
	if err != nil {
		s.metrics.ObserveUpstream(source, "error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"zip":     zip,
			"dataset": dataset,
			"error":   err.Error(),
		}).Warn("hud: fetch failed")
		return nil
	}

	s.metrics.ObserveUpstream(source, "success", time.Since(start))
	return body
}
