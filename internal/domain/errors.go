package domain

import "errors"

var (
	// ErrNoJSONFound is returned when the completion text contains no JSON object
	ErrNoJSONFound = errors.New("no JSON object found in completion")

	// ErrMalformedJSON is returned when the completion's JSON span fails to parse
	ErrMalformedJSON = errors.New("malformed JSON in completion")

	// ErrBlocked is returned when the page source served a block page instead of
	// product content; re-fetching later or from another address may help
	ErrBlocked = errors.New("page source returned an access-denied page instead of product content")

	// ErrCompletionTimeout is returned when the completion call timed out waiting
	// for response headers. The completion may still have succeeded server-side,
	// so callers can treat this as retryable.
	ErrCompletionTimeout = errors.New("timed out waiting for completion response headers")

	// ErrPageFetchFailed is returned when the product page request fails
	ErrPageFetchFailed = errors.New("product page fetch failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
