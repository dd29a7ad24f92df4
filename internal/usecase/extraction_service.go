package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wraplens/backend/internal/domain"
	"github.com/wraplens/backend/internal/infrastructure/amazon"
)

// ExtractionServiceConfig holds configuration for the extraction service
type ExtractionServiceConfig struct {
	Model    string
	CacheTTL time.Duration
}

// ExtractionService runs the page-to-record pipeline with result caching.
// Each call is independent end-to-end: all pipeline state is local to one
// invocation, so concurrent requests need no coordination.
type ExtractionService struct {
	cache      domain.CacheRepository
	pages      domain.PageSource
	completion domain.CompletionClient
	model      string
	cacheTTL   time.Duration
}

// NewExtractionService creates an extraction service with dependencies
func NewExtractionService(
	cache domain.CacheRepository,
	pages domain.PageSource,
	completion domain.CompletionClient,
	config ExtractionServiceConfig,
) *ExtractionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ExtractionService{
		cache:      cache,
		pages:      pages,
		completion: completion,
		model:      config.Model,
		cacheTTL:   cacheTTL,
	}
}

// ExtractProduct turns one product reference (URL, ASIN or raw HTML) into a
// normalized record.
// Flow: check cache -> fetch page -> extract sections -> compose prompt ->
// invoke completion -> resolve -> corroborate block evidence -> validate ->
// cache -> return. No step retries; failed completions propagate to the
// caller, who owns retry policy.
func (s *ExtractionService) ExtractProduct(ctx context.Context, request *domain.ExtractRequest) (*domain.ExtractResult, error) {
	if request == nil || (request.URL == "" && request.ASIN == "" && request.HTML == "") {
		return nil, domain.ErrInvalidRequest
	}

	asin := strings.TrimSpace(request.ASIN)
	pageURL := strings.TrimSpace(request.URL)
	if pageURL == "" && asin != "" {
		pageURL = CanonicalProductURL(asin)
	}

	cacheKey := s.cacheKey(asin, pageURL)

	if cached := s.getFromCache(ctx, cacheKey); cached != nil {
		cached.Source = "cache"
		return cached, nil
	}

	html := request.HTML
	if html == "" {
		fetched, err := s.pages.FetchProductPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		html = fetched
	}

	extracted := ExtractSections(html)
	prompt := ComposePrompt(extracted, asin, pageURL)

	completionText, err := s.completion.Generate(ctx, s.model, prompt)
	if err != nil {
		return nil, err
	}

	record, err := ResolveCompletion(completionText, asin, pageURL)
	if err != nil {
		return nil, err
	}

	// An all-empty record plus block-page phrasing in the HTML means the
	// fetch was served a CAPTCHA wall, not product content. Without the
	// corroborating phrases an empty record is a valid outcome.
	if record.Title == nil && record.Price == nil && record.Brand == nil && amazon.IsBlockPage(html) {
		return nil, domain.ErrBlocked
	}

	if record.Thumbnail == nil && extracted.Thumbnail != "" {
		record.Thumbnail = &extracted.Thumbnail
	}

	violations := ValidateRecord(record)
	for _, violation := range violations {
		slog.Warn("record validation violation", "asin", stringOrEmpty(record.ASIN), "violation", violation)
	}

	result := &domain.ExtractResult{
		Product:    record,
		Violations: violations,
		Source:     "llm",
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			slog.Warn("failed to cache extraction result", "key", cacheKey, "error", err)
		}
	}

	return result, nil
}

// cacheKey builds the cache key for a request. HTML-only requests have no
// stable identity and are never cached.
func (s *ExtractionService) cacheKey(asin, pageURL string) string {
	if asin != "" {
		return fmt.Sprintf("product:asin:%s", strings.ToUpper(asin))
	}
	if pageURL != "" {
		return fmt.Sprintf("product:url:%s", strings.ToLower(pageURL))
	}
	return ""
}

// getFromCache retrieves a previous result, tolerating misses and foreign
// value types.
func (s *ExtractionService) getFromCache(ctx context.Context, key string) *domain.ExtractResult {
	if key == "" {
		return nil
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	result, ok := value.(*domain.ExtractResult)
	if !ok {
		return nil
	}

	// Shallow copy so the cached entry's Source label is not mutated.
	copied := *result
	return &copied
}
