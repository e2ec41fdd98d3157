package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
	"github.com/spiritatlas/entwine/internal/service"
)

// Augmenter implements the engine.Augmenter interface using
// text-completion APIs.
type Augmenter struct {
	client      Client
	provider    string
	cache       *bundleCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewAugmenter creates a new AI insight augmenter.
func NewAugmenter(cfg Config, logger *slog.Logger) (*Augmenter, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return NewAugmenterWithClient(client, strings.ToLower(cfg.Provider), cfg, logger), nil
}

// NewAugmenterWithClient wires an augmenter around an existing client.
// Used by tests to inject mocks.
func NewAugmenterWithClient(client Client, provider string, cfg Config, logger *slog.Logger) *Augmenter {
	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Augmenter{
		client:      client,
		provider:    provider,
		cache:       newBundleCache(cfg.CacheTTL),
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retryOpts:   retryOpts,
	}
}

// Available reports whether a provider client is configured.
func (a *Augmenter) Available(_ context.Context) bool {
	return a.client != nil
}

// Augment generates an AI insight bundle for a profile pair. Transport
// failures are retried with backoff; parse problems are not errors at
// all, they degrade inside parseInsights. An unconfigured provider
// fails fast with ErrAIUnavailable.
func (a *Augmenter) Augment(ctx context.Context, profileA, profileB *model.Profile, scores model.CompatibilityScores, depth model.AnalysisDepth) (*model.AIInsightBundle, error) {
	if a.client == nil {
		return nil, common.ErrAIUnavailable
	}

	cacheKey := model.PairKey(profileA, profileB) + ":" + string(depth)
	if bundle, found := a.cache.get(cacheKey); found {
		a.logger.Debug("cache hit for AI insights",
			"profile_a", profileA.ID,
			"profile_b", profileB.ID)
		return bundle, nil
	}

	if err := a.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	prompt := buildPrompt(profileA, profileB, scores, depth)

	var response GenerateResponse
	operation := func() error {
		var genErr error
		response, genErr = a.client.Generate(ctx, prompt)
		return genErr
	}

	if err := common.WithRetry(ctx, operation, a.retryOpts); err != nil {
		return nil, fmt.Errorf("AI generation failed: %w", err)
	}

	bundle := parseInsights(response.Text, response.Confidence, a.provider)
	a.cache.set(cacheKey, bundle)

	a.logger.Debug("generated AI insights",
		"profile_a", profileA.ID,
		"profile_b", profileB.ID,
		"depth", depth,
		"has_summary", bundle.OverallSummary != "")

	return bundle, nil
}

// Close releases the augmenter's background resources.
func (a *Augmenter) Close() {
	a.rateLimiter.Close()
	a.cache.close()
}
