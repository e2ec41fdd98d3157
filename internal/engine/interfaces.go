package engine

import (
	"context"

	"github.com/spiritatlas/entwine/internal/model"
)

// Augmenter enriches calculated scores with AI-generated analysis. It
// is the only fallible external dependency in the pipeline; a nil
// Augmenter or any error it returns simply means the report ships
// without an AI bundle.
type Augmenter interface {
	// Augment produces an AI insight bundle for the pair, or an error.
	// Implementations must never panic on malformed provider output.
	Augment(ctx context.Context, a, b *model.Profile, scores model.CompatibilityScores, depth model.AnalysisDepth) (*model.AIInsightBundle, error)

	// Available reports whether the underlying provider is configured
	// and reachable enough to be worth calling.
	Available(ctx context.Context) bool
}
