package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

const source = "anthropic"

var (
	ErrNotConfigured = errors.New("claude: api key not configured")
	ErrEmptyResponse = errors.New("claude: response carried no text")
)

// Narrator turns a prompt into prose through the Messages API. One attempt
// per call, no retries.
type Narrator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	enabled   bool
	metrics   *observability.Metrics
}

func New(cfg *config.Config, metrics *observability.Metrics) *Narrator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Anthropic.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Anthropic.Timeout),
	}
	if cfg.Anthropic.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.Anthropic.BaseURL))
	}

	return &Narrator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Anthropic.Model,
		maxTokens: cfg.Anthropic.MaxTokens,
		enabled:   cfg.Anthropic.APIKey != "",
		metrics:   metrics,
	}
}

// Model is the model id narratives are generated with.
func (n *Narrator) Model() string {
	return n.model
}

func (n *Narrator) Generate(ctx context.Context, prompt string) (string, error) {
	if !n.enabled {
		return "", ErrNotConfigured
	}

	start := time.Now()
	message, err := n.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(n.model),
		MaxTokens: n.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		n.metrics.ObserveUpstream(source, "error", time.Since(start))
		return "", fmt.Errorf("claude: generate: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	narrative := strings.TrimSpace(text.String())
	if narrative == "" {
		n.metrics.ObserveUpstream(source, "empty", time.Since(start))
		return "", ErrEmptyResponse
	}

	n.metrics.ObserveUpstream(source, "success", time.Since(start))
	logrus.WithFields(logrus.Fields{
		"model":         n.model,
		"input_tokens":  message.Usage.InputTokens,
		"output_tokens": message.Usage.OutputTokens,
	}).Debug("claude: narrative generated")

	return narrative, nil
}
