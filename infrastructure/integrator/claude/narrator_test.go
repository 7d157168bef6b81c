package claude

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econ-pulse-api/internal/config"
)

func testConfig(baseURL, key string) *config.Config {
	return &config.Config{Anthropic: config.Anthropic{
		APIKey:    key,
		BaseURL:   baseURL,
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 500,
		Timeout:   5 * time.Second,
	}}
}

func TestNarrator_Generate(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"max_tokens":500`)
		assert.Contains(t, string(body), "HEADLINE INDICATORS")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_01","type":"message","role":"assistant","model":"claude-sonnet-4-20250514",
			"content":[{"type":"text","text":"  **The Big Picture:** steady growth.  "}],
			"stop_reason":"end_turn","stop_sequence":null,"usage":{"input_tokens":120,"output_tokens":40}}`))
	}))
	defer srv.Close()

	narrator := New(testConfig(srv.URL, "test-key"), nil)

	got, err := narrator.Generate(context.Background(), "HEADLINE INDICATORS: ...")

	require.NoError(t, err)
	assert.Equal(t, "**The Big Picture:** steady growth.", got)
	assert.Equal(t, 1, calls)
}

func TestNarrator_GenerateDoesNotRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL, "test-key"), nil).Generate(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNarrator_GenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_02","type":"message","role":"assistant","model":"m","content":[],
			"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL, "test-key"), nil).Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNarrator_NotConfigured(t *testing.T) {
	_, err := New(testConfig("", ""), nil).Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrNotConfigured)
}
