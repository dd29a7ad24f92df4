// Package llm invokes the text-completion service. The service is an opaque
// text-in/text-out collaborator: it offers no structural guarantee on its
// output, and its response envelope varies between deployments, so the
// client decodes whatever shape comes back down to plain completion text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/wraplens/backend/internal/domain"
)

// Client talks to an Ollama-compatible completion endpoint
type Client struct {
	httpClient   *http.Client
	baseURL      string
	defaultModel string
	temperature  float64
	topP         float64
}

// Config holds the completion service settings
type Config struct {
	BaseURL     string
	Model       string
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// generateRequest is the non-streaming completion request body
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// NewClient creates a completion service client with deterministic-leaning
// sampling defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}

	topP := cfg.TopP
	if topP == 0 {
		topP = 0.9
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		defaultModel: cfg.Model,
		temperature:  temperature,
		topP:         topP,
	}
}

// Generate sends one non-streaming completion request and returns the raw
// completion text. No retries: a header timeout is surfaced as
// domain.ErrCompletionTimeout because the completion may have succeeded
// server-side, and only the caller can decide whether re-issuing it is safe.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	payload, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			TopP:        c.topP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isHeaderTimeout(err) {
			return "", fmt.Errorf("%w (model %s after %s)", domain.ErrCompletionTimeout, model, time.Since(start).Round(time.Second))
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service error: status %d, body: %s", resp.StatusCode, truncate(string(body), 200))
	}

	slog.Debug("completion received", "model", model, "latency", time.Since(start), "bytes", len(body))

	return extractCompletionText(body), nil
}

// extractCompletionText pulls the text payload out of whichever envelope the
// service used: a bare JSON string, {response}, {text}, {message:{content}},
// or, failing all of those, the body serialized as-is.
func extractCompletionText(body []byte) string {
	var envelope interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return string(body)
	}

	switch v := envelope.(type) {
	case string:
		return v
	case map[string]interface{}:
		if s, ok := v["response"].(string); ok {
			return s
		}
		if s, ok := v["text"].(string); ok {
			return s
		}
		if msg, ok := v["message"].(map[string]interface{}); ok {
			if s, ok := msg["content"].(string); ok {
				return s
			}
		}
	}

	return string(body)
}

// isHeaderTimeout reports whether the request died waiting for response
// headers, the one failure mode where the completion may still have run.
func isHeaderTimeout(err error) bool {
	if strings.Contains(err.Error(), "awaiting headers") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
