package llm

import (
	"context"
	"time"
)

// Client defines the interface for text-completion providers. It is the
// only non-deterministic, failable external dependency of the pipeline.
type Client interface {
	Generate(ctx context.Context, prompt string) (GenerateResponse, error)
}

// GenerateResponse contains the provider's completion text and its
// confidence in the result.
type GenerateResponse struct {
	Text       string
	Confidence float64
}

// Config holds configuration for the augmenter and its provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}
