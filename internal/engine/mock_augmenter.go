package engine

import (
	"context"
	"sync"
	"time"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
)

// MockAugmenter is a test implementation of the Augmenter interface.
// It returns a deterministic bundle and records every call.
type MockAugmenter struct {
	Err         error
	Unavailable bool
	calls       []MockAugmentCall
	mu          sync.Mutex
}

// MockAugmentCall records details of an augmentation request.
type MockAugmentCall struct {
	ProfileAID string
	ProfileBID string
	Depth      model.AnalysisDepth
}

// NewMockAugmenter creates a mock augmenter.
func NewMockAugmenter() *MockAugmenter {
	return &MockAugmenter{}
}

// Augment returns a canned bundle, or the configured error.
func (m *MockAugmenter) Augment(_ context.Context, a, b *model.Profile, scores model.CompatibilityScores, depth model.AnalysisDepth) (*model.AIInsightBundle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockAugmentCall{
		ProfileAID: a.ID,
		ProfileBID: b.ID,
		Depth:      depth,
	})

	if m.Unavailable {
		return nil, common.ErrAIUnavailable
	}
	if m.Err != nil {
		return nil, m.Err
	}

	return &model.AIInsightBundle{
		Numerology: &model.AIDimensionInsight{
			Dimension:  model.DimensionNumerology,
			Analysis:   "Mock numerology analysis",
			KeyPoints:  []string{"mock point"},
			Confidence: 0.9,
		},
		OverallSummary: "Mock overall summary",
		GeneratedAt:    time.Now().UTC(),
		Provider:       "mock",
	}, nil
}

// Available reports the configured availability.
func (m *MockAugmenter) Available(_ context.Context) bool {
	return !m.Unavailable
}

// Calls returns a copy of recorded calls.
func (m *MockAugmenter) Calls() []MockAugmentCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockAugmentCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
