package hudclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/econ-pulse-api/internal/config"
)

// Client returns raw HUD payloads. The shape varies between editions, so
// decoding lives in the hud domain package.
type Client interface {
	GetFairMarketRent(ctx context.Context, entityID string) ([]byte, error)
	GetIncomeLimits(ctx context.Context, entityID string) ([]byte, error)
}

type HUDClient struct {
	httpClient *http.Client
	config     config.HUD
}

func NewClient(cfg *config.Config) Client {
	return &HUDClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.HUD,
	}
}
