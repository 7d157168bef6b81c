package eiaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	eiadomain "github.com/vfg2006/econ-pulse-api/infrastructure/integrator/eia/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PriceParams selects a weekly retail price series, e.g. product EPMR
// (regular gasoline) in duoarea NUS (U.S. average).
type PriceParams struct {
	Product string
	Area    string
	Length  int
}

func (c *EIAClient) GetWeeklyPrices(ctx context.Context, params PriceParams) (eiadomain.DataResponse, error) {
	var response eiadomain.DataResponse

	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return response, fmt.Errorf("eia: invalid base url: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "petroleum/pri/gnd/data") + "/"

	query := endpoint.Query()
	query.Set("api_key", c.config.APIKey)
	query.Set("frequency", "weekly")
	query.Set("data[0]", "value")
	query.Set("facets[product][]", params.Product)
	query.Set("facets[duoarea][]", params.Area)
	query.Set("sort[0][column]", "period")
	query.Set("sort[0][direction]", "desc")
	query.Set("length", strconv.Itoa(params.Length))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("eia: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("eia: request %s/%s: %w", params.Product, params.Area, utils.RedactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, fmt.Errorf("eia: %s/%s returned %s", params.Product, params.Area, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("eia: decode %s/%s: %w", params.Product, params.Area, err)
	}

	return response, nil
}
