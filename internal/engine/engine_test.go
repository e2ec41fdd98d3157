package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
	"github.com/spiritatlas/entwine/internal/service"
	"github.com/spiritatlas/entwine/internal/storage"
)

func newTestStorage(t *testing.T) service.Storage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testCouple(t *testing.T, store service.Storage) (*model.Profile, *model.Profile) {
	t.Helper()
	ctx := context.Background()

	birthA := time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC)
	a := model.NewProfile("alice")
	a.Name = "Alice Johnson"
	a.BirthDateTime = &birthA
	a.Gender = model.GenderFeminine

	birthB := time.Date(1988, 7, 22, 14, 0, 0, 0, time.UTC)
	b := model.NewProfile("bob")
	b.Name = "Bob Smith"
	b.BirthDateTime = &birthB
	b.Gender = model.GenderMasculine

	require.NoError(t, store.SaveProfile(ctx, a))
	require.NoError(t, store.SaveProfile(ctx, b))
	return a, b
}

func TestAnalyzeProfilesRuleBased(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	eng := New(store, nil)

	report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Same(t, a, report.ProfileA)
	assert.Same(t, b, report.ProfileB)
	assert.Nil(t, report.AIInsights, "no augmenter configured")
	assert.False(t, report.GeneratedAt.IsZero())

	for _, d := range model.Dimensions() {
		value := report.Scores.Get(d).Value
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
	}

	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "Sacred Morning Ritual", report.Recommendations[0].Title)
	assert.NotEmpty(t, report.ActionPlan.ImmediateActions)
	assert.NotEmpty(t, report.RelationshipDynamics)
	assert.NotEmpty(t, report.OverallRecommendation)
}

func TestAnalyzeResolvesAndPersists(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	eng := New(store, nil)

	report, err := eng.Analyze(ctx, a.ID, b.ID, Options{})
	require.NoError(t, err)

	stored, err := store.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, stored.ID)
	assert.Equal(t, a.ID, stored.ProfileA.ID)
	assert.Equal(t, b.ID, stored.ProfileB.ID)
}

func TestAnalyzeUnknownProfile(t *testing.T) {
	store := newTestStorage(t)
	a, _ := testCouple(t, store)
	eng := New(store, nil)

	_, err := eng.Analyze(context.Background(), a.ID, "no-such-id", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr, "missing profiles surface as user errors")
}

func TestAnalyzeProfilesWithAI(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	augmenter := NewMockAugmenter()
	eng := New(store, augmenter)

	report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{
		IncludeAI: true,
		Depth:     model.DepthComprehensive,
	})
	require.NoError(t, err)

	require.NotNil(t, report.AIInsights)
	assert.Equal(t, "mock", report.AIInsights.Provider)
	assert.NotEmpty(t, report.AIInsights.OverallSummary)

	calls := augmenter.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, model.DepthComprehensive, calls[0].Depth)
}

func TestAnalyzeProfilesDefaultsDepth(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	augmenter := NewMockAugmenter()
	eng := New(store, augmenter)

	_, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{IncludeAI: true})
	require.NoError(t, err)

	calls := augmenter.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, model.DepthStandard, calls[0].Depth)
}

func TestAnalyzeProfilesDegradesWhenAIFails(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)

	tests := []struct {
		name      string
		augmenter *MockAugmenter
	}{
		{"provider unavailable", &MockAugmenter{Unavailable: true}},
		{"provider error", &MockAugmenter{Err: assert.AnError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(store, tt.augmenter)

			report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{IncludeAI: true})
			require.NoError(t, err, "AI failures never fail the analysis")

			assert.Nil(t, report.AIInsights)
			assert.NotEmpty(t, report.Recommendations, "rule-based content is unaffected")
			assert.NotEmpty(t, report.OverallRecommendation)
		})
	}
}

func TestAnalyzeProfilesSkipsAIWhenNotRequested(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	augmenter := NewMockAugmenter()
	eng := New(store, augmenter)

	report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{IncludeAI: false})
	require.NoError(t, err)

	assert.Nil(t, report.AIInsights)
	assert.Empty(t, augmenter.Calls(), "augmenter must not be invoked without opt-in")
}

func TestCachedReport(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	eng := New(store, nil)

	_, ok := eng.CachedReport(a, b)
	assert.False(t, ok)

	report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{})
	require.NoError(t, err)

	cached, ok := eng.CachedReport(a, b)
	require.True(t, ok)
	assert.Equal(t, report.ID, cached.ID)

	// order of the pair does not matter
	cached, ok = eng.CachedReport(b, a)
	require.True(t, ok)
	assert.Equal(t, report.ID, cached.ID)
}

func TestAnalyzeProfilesWithTantricContent(t *testing.T) {
	store := newTestStorage(t)
	a, b := testCouple(t, store)
	eng := New(store, nil)

	library := []model.TantricContent{
		{ID: "ks-001", ContentType: model.ContentKamaSutra},
		{ID: "tp-001", ContentType: model.ContentPractices},
	}

	report, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{TantricContent: library})
	require.NoError(t, err)
	require.Len(t, report.TantricMatches, 2)

	again, err := eng.AnalyzeProfiles(context.Background(), a, b, Options{TantricContent: library})
	require.NoError(t, err)
	assert.Equal(t, report.TantricMatches, again.TantricMatches, "matching is deterministic per couple")
}
