package eiaclient

import (
	"context"
	"net/http"
	"time"

	eiadomain "github.com/vfg2006/econ-pulse-api/infrastructure/integrator/eia/domain"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

type Client interface {
	GetWeeklyPrices(ctx context.Context, params PriceParams) (eiadomain.DataResponse, error)
}

type EIAClient struct {
	httpClient *http.Client
	config     config.EIA
}

func NewClient(cfg *config.Config) Client {
	return &EIAClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.EIA,
	}
}
