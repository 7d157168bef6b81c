package fredclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	freddomain "github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fred/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// The widest real-time window FRED accepts. Without it revised series answer
// with the vintage of the request date only.
const (
	realtimeStart = "1776-07-04"
	realtimeEnd   = "9999-12-31"
)

type ObservationsParams struct {
	SeriesID string
	Limit    int
}

func (c *FredClient) GetObservations(ctx context.Context, params ObservationsParams) (freddomain.ObservationsResponse, error) {
	var response freddomain.ObservationsResponse

	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return response, fmt.Errorf("fred: invalid base url: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "series/observations")

	query := endpoint.Query()
	query.Set("series_id", params.SeriesID)
	query.Set("api_key", c.config.APIKey)
	query.Set("file_type", "json")
	query.Set("sort_order", "desc")
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("realtime_start", realtimeStart)
	query.Set("realtime_end", realtimeEnd)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("fred: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("fred: request %s: %w", params.SeriesID, utils.RedactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr freddomain.ErrorResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return response, fmt.Errorf("fred: %s returned %s: %s", params.SeriesID, resp.Status, apiErr.Message)
		}
		return response, fmt.Errorf("fred: %s returned %s", params.SeriesID, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("fred: decode %s: %w", params.SeriesID, err)
	}

	return response, nil
}
