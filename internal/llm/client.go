package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/httpclient"
	"go.uber.org/zap"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Client sends single-prompt chat completions to any registered dialect.
type Client struct {
	http   httpclient.HTTPClient
	logger *zap.Logger
}

// NewClient builds a client sharing one http.Client. A zero timeout means
// calls are bounded only by the caller's context.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP is used by tests and the benchmark to inject a transport.
func NewClientWithHTTP(hc httpclient.HTTPClient, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{http: hc, logger: logger}
}

// Chat sends prompt as a single user message and returns the reply text.
// The provider is taken by value, so later config edits do not affect the call.
func (c *Client) Chat(ctx context.Context, p domain.ProviderConfig, prompt string) (string, error) {
	dialect, err := Get(p.Kind)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(p.BaseURL, "/") + "/chat/completions"
	req := chatRequest{
		Model:       p.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: p.TemperatureOrDefault(),
		MaxTokens:   p.MaxTokensOrDefault(),
	}

	start := time.Now()
	raw, err := httpclient.SendRequest(ctx, c.http, http.MethodPost, url, dialect.Headers(p), req)
	latency := time.Since(start)
	if err != nil {
		c.logger.Warn("Chat request failed",
			zap.String("provider_id", p.ID),
			zap.String("kind", p.Kind),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return "", translateError(err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", domain.ParseError("failed to parse response", err)
	}

	reply, ok := dialect.ExtractReply(body)
	if !ok {
		return "", domain.EmptyResponseError("empty response")
	}

	c.logger.Debug("Chat request completed",
		zap.String("provider_id", p.ID),
		zap.String("kind", p.Kind),
		zap.String("model", p.Model),
		zap.Duration("latency", latency),
	)
	return reply, nil
}

func translateError(err error) error {
	var upstreamErr *httpclient.UpstreamError
	if errors.As(err, &upstreamErr) {
		return domain.UpstreamError(upstreamErr.StatusCode, string(upstreamErr.Body))
	}
	var transportErr *httpclient.TransportError
	if errors.As(err, &transportErr) {
		return domain.TransportError("request failed", transportErr.Err)
	}
	return domain.TransportError("request failed", err)
}
