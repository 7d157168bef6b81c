package fredclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

func testClient(baseURL string) *FredClient {
	return &FredClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		config:     config.Fred{APIKey: "secret-key", BaseURL: baseURL},
	}
}

func TestGetObservations(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fred/series/observations", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sort_order":"desc","count":2,"limit":2,"observations":[
			{"realtime_start":"2024-06-01","date":"2024-05-01","value":"4.0"},
			{"realtime_start":"2024-06-01","date":"2024-04-01","value":"."}]}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL+"/fred").GetObservations(context.Background(), ObservationsParams{SeriesID: "UNRATE", Limit: 2})

	require.NoError(t, err)
	require.Len(t, resp.Observations, 2)
	assert.Equal(t, "2024-05-01", resp.Observations[0].Date)
	assert.Equal(t, "4.0", resp.Observations[0].Value)
	assert.Equal(t, ".", resp.Observations[1].Value)

	assert.Equal(t, map[string]string{
		"series_id":      "UNRATE",
		"api_key":        "secret-key",
		"file_type":      "json",
		"sort_order":     "desc",
		"limit":          "2",
		"realtime_start": "1776-07-04",
		"realtime_end":   "9999-12-31",
	}, gotQuery)
}

func TestGetObservationsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code":400,"error_message":"Bad Request. The series does not exist."}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetObservations(context.Background(), ObservationsParams{SeriesID: "NOPE", Limit: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "series does not exist")
}

func TestGetObservationsRedactsKeyOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).GetObservations(context.Background(), ObservationsParams{SeriesID: "UNRATE", Limit: 1})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestGetObservationsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"observations":`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetObservations(context.Background(), ObservationsParams{SeriesID: "UNRATE", Limit: 1})

	assert.Error(t, err)
}
