package briefing

import (
	"context"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

// EconomySource provides the summary a briefing is written from.
type EconomySource interface {
	Economy(ctx context.Context) (*domain.EconomicSummary, error)
}

// Narrator turns a prompt into prose.
type Narrator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type Briefer interface {
	// GetBriefing serves today's briefing, generating it on a miss. On
	// failure the returned briefing is the static fallback.
	GetBriefing(ctx context.Context) (*domain.Briefing, error)

	// GenerateDaily writes a fresh briefing for today, replacing any stored one.
	GenerateDaily(ctx context.Context) (*domain.Briefing, error)

	// Latest returns the most recently generated briefing, whatever its date.
	Latest(ctx context.Context) (*domain.Briefing, error)
}
