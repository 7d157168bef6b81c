package aggregating

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/jonboulle/clockwork"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/infrastructure/cache"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const cacheKeyPrefix = "dashboard:"

type Service struct {
	cfg      *config.Config
	catalog  Catalog
	pipeline *Pipeline
	fiscal   FiscalSource
	housing  HousingSource
	cache    cache.Store
	clock    clockwork.Clock
	metrics  *observability.Metrics
}

func NewService(
	cfg *config.Config,
	catalog Catalog,
	pipeline *Pipeline,
	fiscal FiscalSource,
	housing HousingSource,
	store cache.Store,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		cfg:      cfg,
		catalog:  catalog,
		pipeline: pipeline,
		fiscal:   fiscal,
		housing:  housing,
		cache:    store,
		clock:    clock,
		metrics:  metrics,
	}
}

func (s *Service) Economy(ctx context.Context) (*domain.EconomicSummary, error) {
	return s.economy(ctx, false)
}

func (s *Service) economy(ctx context.Context, force bool) (*domain.EconomicSummary, error) {
	return run(ctx, s, DashboardEconomy, cacheKey(DashboardEconomy), s.cfg.Cache.TTL, force, s.assembleEconomy)
}

func (s *Service) Glance(ctx context.Context) (*domain.GlanceSummary, error) {
	return s.glance(ctx, false)
}

func (s *Service) glance(ctx context.Context, force bool) (*domain.GlanceSummary, error) {
	return run(ctx, s, DashboardSummary, cacheKey(DashboardSummary), s.cfg.Cache.TTL, force, s.assembleGlance)
}

// Housing assembles the housing dashboard. zip must already be validated;
// an empty zip skips the local rent and income figures.
func (s *Service) Housing(ctx context.Context, zip string) (*domain.HousingSummary, error) {
	return s.housingSummary(ctx, zip, false)
}

func (s *Service) housingSummary(ctx context.Context, zip string, force bool) (*domain.HousingSummary, error) {
	key := cacheKey(DashboardHousing)
	if zip != "" {
		key += ":" + zip
	}

	return run(ctx, s, DashboardHousing, key, s.cfg.Cache.TTL, force, func(ctx context.Context) (*domain.HousingSummary, error) {
		return s.assembleHousing(ctx, zip)
	})
}

func (s *Service) Treasury(ctx context.Context) (*domain.TreasurySummary, error) {
	return s.treasury(ctx, false)
}

func (s *Service) treasury(ctx context.Context, force bool) (*domain.TreasurySummary, error) {
	return run(ctx, s, DashboardTreasury, cacheKey(DashboardTreasury), s.cfg.Cache.TTL, force, s.assembleTreasury)
}

func (s *Service) Prices(ctx context.Context) (*domain.PriceSummary, error) {
	return s.prices(ctx, false)
}

func (s *Service) prices(ctx context.Context, force bool) (*domain.PriceSummary, error) {
	return run(ctx, s, DashboardPrices, cacheKey(DashboardPrices), s.cfg.Cache.PricesTTL, force, s.assemblePrices)
}

func (s *Service) Dashboard(ctx context.Context, name string) (any, error) {
	return s.dashboard(ctx, name, false)
}

func (s *Service) dashboard(ctx context.Context, name string, force bool) (any, error) {
	switch name {
	case DashboardEconomy:
		return s.economy(ctx, force)
	case DashboardSummary:
		return s.glance(ctx, force)
	case DashboardHousing:
		return s.housingSummary(ctx, "", force)
	case DashboardTreasury:
		return s.treasury(ctx, force)
	case DashboardPrices:
		return s.prices(ctx, force)
	}
	return nil, pkgerrors.Wrap(ErrUnknownDashboard, name)
}

// Warm reassembles every dashboard and refreshes its cache entry. It keeps
// going after a failure and reports all of them.
func (s *Service) Warm(ctx context.Context) error {
	var errs []error
	for _, name := range Dashboards {
		if _, err := s.dashboard(ctx, name, true); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func cacheKey(dashboard string) string {
	return cacheKeyPrefix + dashboard
}

// run serves a dashboard from the cache when possible, otherwise assembles
// it and stores the result. Cache trouble is logged and never fails the call.
func run[T any](
	ctx context.Context,
	s *Service,
	dashboard, key string,
	ttl time.Duration,
	force bool,
	assemble func(context.Context) (*T, error),
) (*T, error) {
	if s.cache != nil && !force {
		cached, err := cache.GetJSON[T](ctx, s.cache, key)
		switch {
		case err == nil:
			s.metrics.CacheLookup(dashboard, "hit")
			return &cached, nil
		case errors.Is(err, cache.ErrCacheMiss):
			s.metrics.CacheLookup(dashboard, "miss")
		default:
			s.metrics.CacheLookup(dashboard, "error")
			logrus.WithFields(logrus.Fields{
				"dashboard": dashboard,
				"error":     err.Error(),
			}).Warn("aggregating: cache read failed, assembling")
		}
	}

	start := time.Now()
	result, err := safeAssemble(ctx, assemble)
	s.metrics.ObserveAssembly(dashboard, time.Since(start), err)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dashboard": dashboard,
			"error":     err.Error(),
		}).Error("aggregating: assembly failed")
		return nil, pkgerrors.Wrap(err, dashboard)
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, result, ttl); err != nil {
			logrus.WithFields(logrus.Fields{
				"dashboard": dashboard,
				"error":     err.Error(),
			}).Warn("aggregating: cache write failed")
		}
	}

	return result, nil
}

func safeAssemble[T any](ctx context.Context, assemble func(context.Context) (*T, error)) (result *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stack", string(debug.Stack())).Debug("aggregating: assembler panic")
			result, err = nil, fmt.Errorf("%w: %v", ErrAssemblyFailed, r)
		}
	}()

	result, err = assemble(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssemblyFailed, err)
	}
	return result, nil
}
