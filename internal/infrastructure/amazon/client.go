// Package amazon retrieves raw product page HTML. The pages are untrusted
// text: the site may answer with a block page instead of product content,
// which IsBlockPage detects so callers can corroborate empty extractions.
package amazon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/wraplens/backend/internal/domain"
)

// blockPhrases are the literal markers of the known block pages. Deliberately
// narrow: this is a heuristic, not a security control.
var blockPhrases = []string{
	"continue shopping",
	"enter the characters you see below",
}

// Client fetches Amazon product pages over HTTP
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// Config holds the fetch settings
type Config struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// NewClient creates a new product page client. The rate limiter keeps the
// crawl polite; a burst of 1 means strictly sequential pacing.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = 0.5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// ProductURL builds the canonical product page URL for an ASIN.
func (c *Client) ProductURL(asin string) string {
	return fmt.Sprintf("%s/dp/%s", c.baseURL, asin)
}

// FetchProductPage retrieves the HTML of one product page. Single shot: no
// retries happen here, callers own retry policy. Non-2xx responses fail with
// domain.ErrPageFetchFailed carrying the status code.
func (c *Client) FetchProductPage(ctx context.Context, pageURL string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	slog.Debug("fetching product page", "url", pageURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPageFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", domain.ErrPageFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrPageFetchFailed, err)
	}

	return string(body), nil
}

// IsBlockPage reports whether the HTML contains a known block-page phrase.
func IsBlockPage(html string) bool {
	lowered := strings.ToLower(html)
	for _, phrase := range blockPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
