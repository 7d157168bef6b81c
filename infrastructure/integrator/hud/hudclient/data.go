package hudclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// HUD answers large metros with multi-megabyte payloads; anything past this
// is not a response we can use.
const maxBodyBytes = 8 << 20

func (c *HUDClient) GetFairMarketRent(ctx context.Context, entityID string) ([]byte, error) {
	return c.getData(ctx, "fmr", entityID)
}

func (c *HUDClient) GetIncomeLimits(ctx context.Context, entityID string) ([]byte, error) {
	return c.getData(ctx, "il", entityID)
}

func (c *HUDClient) getData(ctx context.Context, dataset, entityID string) ([]byte, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("hud: invalid base url: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, dataset, "data", url.PathEscape(entityID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("hud: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hud: %s request for %s: %w", dataset, entityID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("hud: read %s body: %w", dataset, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("hud: %s for %s returned %s", dataset, entityID, resp.Status)
	}

	return body, nil
}
