package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PageSource defines the interface for retrieving raw product page HTML.
// The returned HTML is untrusted text; it may be a block page.
type PageSource interface {
	FetchProductPage(ctx context.Context, url string) (string, error)
}

// CompletionClient defines the interface for the text-completion service.
// The contract is text-in/text-out; no structural guarantee on the output.
// An empty model selects the client's configured default.
type CompletionClient interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
