// Package engine orchestrates the compatibility analysis pipeline:
// profile resolution, parallel dimension scoring, rule-based insight
// generation, optional AI augmentation, and report assembly.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
	"github.com/spiritatlas/entwine/internal/scoring"
	"github.com/spiritatlas/entwine/internal/service"
)

// AnalysisEngine runs the compatibility pipeline for pairs of profiles.
type AnalysisEngine struct {
	storage   service.Storage
	augmenter Augmenter
	cache     *ReportCache
	aiTimeout time.Duration
}

// Config holds configuration options for the analysis engine.
type Config struct {
	CacheSize int
	AITimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheSize: 128,
		AITimeout: 30 * time.Second,
	}
}

// Options controls a single analysis run.
type Options struct {
	IncludeAI      bool
	Depth          model.AnalysisDepth
	TantricContent []model.TantricContent
}

// New creates an analysis engine. The augmenter may be nil, in which
// case reports are rule-based only.
func New(storage service.Storage, augmenter Augmenter) *AnalysisEngine {
	return NewWithConfig(storage, augmenter, DefaultConfig())
}

// NewWithConfig creates an analysis engine with custom configuration.
func NewWithConfig(storage service.Storage, augmenter Augmenter, cfg Config) *AnalysisEngine {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 30 * time.Second
	}
	return &AnalysisEngine{
		storage:   storage,
		augmenter: augmenter,
		cache:     NewReportCache(cfg.CacheSize),
		aiTimeout: cfg.AITimeout,
	}
}

// Analyze resolves two profiles by id and runs the full pipeline. A
// missing profile is the only condition that aborts early; it surfaces
// as a user-facing not-found error.
func (e *AnalysisEngine) Analyze(ctx context.Context, profileIDA, profileIDB string, opts Options) (*model.CompatibilityReport, error) {
	profileA, err := e.storage.GetProfile(ctx, profileIDA)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewUserError(fmt.Sprintf("profile %s not found", profileIDA), err)
		}
		return nil, fmt.Errorf("failed to load profile %s: %w", profileIDA, err)
	}

	profileB, err := e.storage.GetProfile(ctx, profileIDB)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewUserError(fmt.Sprintf("profile %s not found", profileIDB), err)
		}
		return nil, fmt.Errorf("failed to load profile %s: %w", profileIDB, err)
	}

	report, err := e.AnalyzeProfiles(ctx, profileA, profileB, opts)
	if err != nil {
		return nil, err
	}

	if err := e.storage.SaveReport(ctx, report); err != nil {
		slog.Warn("Failed to persist report", "report_id", report.ID, "error", err)
	}

	return report, nil
}

// AnalyzeProfiles runs the pipeline on two already-resolved profiles.
// The returned report always carries populated scores, insights,
// strengths, challenges and recommendations; the AI bundle is nil
// whenever augmentation is disabled, unavailable, or fails.
func (e *AnalysisEngine) AnalyzeProfiles(ctx context.Context, a, b *model.Profile, opts Options) (*model.CompatibilityReport, error) {
	scores, err := scoring.Calculate(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate scores: %w", err)
	}

	report := &model.CompatibilityReport{
		ID:                    uuid.NewString(),
		ProfileA:              a,
		ProfileB:              b,
		Scores:                scores,
		Insights:              generateInsights(scores),
		Strengths:             identifyStrengths(scores),
		Challenges:            identifyChallenges(scores),
		TantricMatches:        scoring.MatchTantricContent(a, b, opts.TantricContent),
		RelationshipDynamics:  describeDynamics(scores),
		OverallRecommendation: overallRecommendation(scores),
		GeneratedAt:           time.Now().UTC(),
	}
	report.Recommendations = buildRecommendations(scores)
	report.ActionPlan = buildActionPlan(report.Challenges, report.Strengths)

	if opts.IncludeAI && e.augmenter != nil {
		report.AIInsights = e.augment(ctx, a, b, scores, opts.Depth)
	}

	e.cache.Put(model.PairKey(a, b), report)

	return report, nil
}

// augment runs the AI step under its own timeout. Any failure degrades
// to a nil bundle; the rest of the report is already complete.
func (e *AnalysisEngine) augment(ctx context.Context, a, b *model.Profile, scores model.CompatibilityScores, depth model.AnalysisDepth) *model.AIInsightBundle {
	if depth == "" {
		depth = model.DepthStandard
	}

	aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	bundle, err := e.augmenter.Augment(aiCtx, a, b, scores, depth)
	if err != nil {
		if errors.Is(err, common.ErrAIUnavailable) {
			slog.Debug("AI augmentation skipped, provider unavailable")
		} else {
			slog.Warn("AI augmentation failed, report is rule-based only", "error", err)
		}
		return nil
	}
	return bundle
}

// CachedReport returns the most recent report for a profile pair, if
// one is still resident in the cache.
func (e *AnalysisEngine) CachedReport(a, b *model.Profile) (*model.CompatibilityReport, bool) {
	return e.cache.Get(model.PairKey(a, b))
}
