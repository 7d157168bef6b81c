package fiscalclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope struct {
	Data jsoniter.RawMessage `json:"data"`
}

func (c *FiscalClient) GetRecords(ctx context.Context, query Query, dest any) error {
	endpoint, err := url.Parse(strings.TrimRight(c.config.BaseURL, "/") + query.Endpoint)
	if err != nil {
		return fmt.Errorf("fiscal data: invalid url: %w", err)
	}

	values := endpoint.Query()
	if len(query.Fields) > 0 {
		values.Set("fields", strings.Join(query.Fields, ","))
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Limit > 0 {
		values.Set("page[size]", strconv.Itoa(query.Limit))
	}
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("fiscal data: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fiscal data: request %s: %w", query.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fiscal data: %s returned %s", query.Endpoint, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("fiscal data: decode %s: %w", query.Endpoint, err)
	}
	if len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("fiscal data: decode %s records: %w", query.Endpoint, err)
	}

	return nil
}
