package fredclient

import (
	"context"
	"net/http"
	"time"

	freddomain "github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fred/domain"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

type Client interface {
	GetObservations(ctx context.Context, params ObservationsParams) (freddomain.ObservationsResponse, error)
}

type FredClient struct {
	httpClient *http.Client
	config     config.Fred
}

func NewClient(cfg *config.Config) Client {
	return &FredClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.Fred,
	}
}
