package fiscalclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/econ-pulse-api/internal/config"
)

// Query selects a page of a Fiscal Data dataset.
type Query struct {
	Endpoint string
	Fields   []string
	Sort     string
	Limit    int
}

type Client interface {
	// GetRecords decodes the "data" array of the endpoint into dest, which
	// must be a pointer to a slice.
	GetRecords(ctx context.Context, query Query, dest any) error
}

type FiscalClient struct {
	httpClient *http.Client
	config     config.FiscalData
}

func NewClient(cfg *config.Config) Client {
	return &FiscalClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.FiscalData,
	}
}
