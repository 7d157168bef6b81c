package briefing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/infrastructure/cache"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const (
	keyPrefix = "briefing:"
	latestKey = keyPrefix + "latest"
)

var ErrNoBriefing = errors.New("briefing: none generated yet")

type Service struct {
	economy  EconomySource
	narrator Narrator
	cache    cache.Store
	clock    clockwork.Clock
	ttl      time.Duration
	metrics  *observability.Metrics

	// mu serialises generation so concurrent misses produce one briefing.
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	economy EconomySource,
	narrator Narrator,
	store cache.Store,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		economy:  economy,
		narrator: narrator,
		cache:    store,
		clock:    clock,
		ttl:      cfg.Cache.BriefingTTL,
		metrics:  metrics,
	}
}

func dayKey(day string) string {
	return keyPrefix + day
}

func (s *Service) GetBriefing(ctx context.Context) (*domain.Briefing, error) {
	today := utils.FormatDay(s.clock.Now())

	if stored, ok := s.lookup(ctx, dayKey(today)); ok {
		return stored, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have generated it while we waited.
	if stored, ok := s.lookup(ctx, dayKey(today)); ok {
		return stored, nil
	}

	generated, err := s.generate(ctx)
	if err != nil {
		return s.fallback(today), err
	}
	return generated, nil
}

func (s *Service) GenerateDaily(ctx context.Context) (*domain.Briefing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generate(ctx)
}

func (s *Service) Latest(ctx context.Context) (*domain.Briefing, error) {
	if stored, ok := s.lookup(ctx, latestKey); ok {
		return stored, nil
	}
	return nil, ErrNoBriefing
}

func (s *Service) lookup(ctx context.Context, key string) (*domain.Briefing, bool) {
	if s.cache == nil {
		return nil, false
	}

	stored, err := cache.GetJSON[domain.Briefing](ctx, s.cache, key)
	switch {
	case err == nil:
		s.metrics.CacheLookup("briefing", "hit")
		stored.Cached = true
		return &stored, true
	case errors.Is(err, cache.ErrCacheMiss):
		s.metrics.CacheLookup("briefing", "miss")
	default:
		s.metrics.CacheLookup("briefing", "error")
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("briefing: cache read failed")
	}
	return nil, false
}

// generate must be called with mu held.
func (s *Service) generate(ctx context.Context) (*domain.Briefing, error) {
	now := s.clock.Now().UTC()
	today := utils.FormatDay(now)

	summary, err := s.economy.Economy(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "briefing: economy summary")
	}

	text, err := BuildPrompt(summary, now)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "briefing: rendering prompt")
	}

	narrative, err := s.narrator.Generate(ctx, text)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "briefing: generating narrative")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "briefing: generating id")
	}

	generated := &domain.Briefing{
		ID:          id,
		Briefing:    narrative,
		Date:        today,
		GeneratedAt: now,
		Model:       s.narrator.Model(),
	}

	s.store(ctx, generated)

	logrus.WithFields(logrus.Fields{
		"briefing_id": id,
		"date":        today,
		"model":       generated.Model,
	}).Info("briefing: generated")

	return generated, nil
}

func (s *Service) store(ctx context.Context, b *domain.Briefing) {
	if s.cache == nil {
		return
	}

	for _, key := range []string{dayKey(b.Date), latestKey} {
		if err := cache.SetJSON(ctx, s.cache, key, b, s.ttl); err != nil {
			logrus.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("briefing: cache write failed")
		}
	}
}

func (s *Service) fallback(today string) *domain.Briefing {
	return &domain.Briefing{
		Briefing:    domain.FallbackBriefing,
		Date:        today,
		GeneratedAt: s.clock.Now().UTC(),
		Fallback:    true,
	}
}
