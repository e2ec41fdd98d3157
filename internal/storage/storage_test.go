package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func sampleProfile(name string) *model.Profile {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)
	p := model.NewProfile(name)
	p.Name = name + " Fullname"
	p.DisplayName = name
	p.BirthDateTime = &birth
	p.BirthPlace = &model.BirthPlace{
		City:     "Portland",
		Country:  "USA",
		Timezone: "America/Los_Angeles",
	}
	p.Nickname = "Nick"
	p.MotherName = "Maria"
	p.Gender = model.GenderFeminine
	p.LoveLanguage = model.LoveLanguageQualityTime
	p.CommunicationStyle = model.CommunicationDirect
	p.AttachmentStyle = model.AttachmentSecure
	return p
}

func TestSaveAndGetProfile(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	profile := sampleProfile("alice")
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, profile.ID)
	require.NoError(t, err)

	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, profile.ProfileName, got.ProfileName)
	assert.Equal(t, profile.Name, got.Name)
	assert.Equal(t, profile.DisplayName, got.DisplayName)
	require.NotNil(t, got.BirthDateTime)
	assert.True(t, profile.BirthDateTime.Equal(*got.BirthDateTime))
	require.NotNil(t, got.BirthPlace)
	assert.Equal(t, "Portland", got.BirthPlace.City)
	assert.Equal(t, "America/Los_Angeles", got.BirthPlace.Timezone)

	// attributes round-trip through the JSON column
	assert.Equal(t, "Nick", got.Nickname)
	assert.Equal(t, "Maria", got.MotherName)
	assert.Equal(t, model.GenderFeminine, got.Gender)
	assert.Equal(t, model.LoveLanguageQualityTime, got.LoveLanguage)
	assert.Equal(t, model.CommunicationDirect, got.CommunicationStyle)
	assert.Equal(t, model.AttachmentSecure, got.AttachmentStyle)
}

func TestSaveProfileIsUpsert(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	profile := sampleProfile("alice")
	require.NoError(t, store.SaveProfile(ctx, profile))

	profile.DisplayName = "Renamed"
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.DisplayName)

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1, "saving twice must not duplicate the row")
}

func TestGetProfileNotFound(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.GetProfile(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSparseProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	profile := model.NewProfile("bare")
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, profile.ID)
	require.NoError(t, err)

	assert.Empty(t, got.Name)
	assert.Nil(t, got.BirthDateTime)
	assert.Nil(t, got.BirthPlace)
	assert.Equal(t, model.GenderUnknown, got.Gender)
}

func TestListProfiles(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	first := sampleProfile("alice")
	first.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := sampleProfile("bob")
	second.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveProfile(ctx, second))
	require.NoError(t, store.SaveProfile(ctx, first))

	profiles, err = store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, first.ID, profiles[0].ID, "ordered by creation time")
	assert.Equal(t, second.ID, profiles[1].ID)
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	profile := sampleProfile("alice")
	require.NoError(t, store.SaveProfile(ctx, profile))
	require.NoError(t, store.DeleteProfile(ctx, profile.ID))

	_, err := store.GetProfile(ctx, profile.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = store.DeleteProfile(ctx, profile.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func sampleReport(a, b *model.Profile, generatedAt time.Time) *model.CompatibilityReport {
	return &model.CompatibilityReport{
		ID:       "report-" + generatedAt.Format("20060102150405"),
		ProfileA: a,
		ProfileB: b,
		Scores: model.CompatibilityScores{
			Numerology: model.DimensionScore{Value: 88},
			Tantric:    model.DimensionScore{Value: 92},
		},
		Insights: []model.Insight{{
			Title:    "Deep Soul Connection",
			Category: model.InsightSoulConnection,
		}},
		Recommendations: []model.Recommendation{{
			Title:    "Sacred Morning Ritual",
			Priority: model.PriorityHigh,
		}},
		RelationshipDynamics:  "Balanced partnership",
		OverallRecommendation: "Nurture the connection",
		GeneratedAt:           generatedAt,
	}
}

func TestSaveAndGetReport(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	a := sampleProfile("alice")
	b := sampleProfile("bob")
	require.NoError(t, store.SaveProfile(ctx, a))
	require.NoError(t, store.SaveProfile(ctx, b))

	generatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	report := sampleReport(a, b, generatedAt)
	require.NoError(t, store.SaveReport(ctx, report))

	got, err := store.GetReport(ctx, report.ID)
	require.NoError(t, err)

	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, a.ID, got.ProfileA.ID, "profiles are resolved on load")
	assert.Equal(t, b.ID, got.ProfileB.ID)
	assert.InDelta(t, 88.0, got.Scores.Numerology.Value, 0.001)
	require.Len(t, got.Insights, 1)
	assert.Equal(t, "Deep Soul Connection", got.Insights[0].Title)
	assert.Equal(t, "Balanced partnership", got.RelationshipDynamics)
	assert.True(t, generatedAt.Equal(got.GeneratedAt))
	assert.Nil(t, got.AIInsights)
}

func TestGetReportNotFound(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.GetReport(context.Background(), "no-such-report")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetReportsByProfile(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	a := sampleProfile("alice")
	b := sampleProfile("bob")
	c := sampleProfile("carol")
	for _, p := range []*model.Profile{a, b, c} {
		require.NoError(t, store.SaveProfile(ctx, p))
	}

	older := sampleReport(a, b, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleReport(b, c, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	unrelated := sampleReport(a, c, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	for _, r := range []*model.CompatibilityReport{older, newer, unrelated} {
		require.NoError(t, store.SaveReport(ctx, r))
	}

	reports, err := store.GetReportsByProfile(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2, "matches on either side of the pair")
	assert.Equal(t, newer.ID, reports[0].ID, "newest first")
	assert.Equal(t, older.ID, reports[1].ID)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	t.Run("nil profile", func(t *testing.T) {
		assert.Error(t, store.SaveProfile(ctx, nil))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := store.GetProfile(ctx, "")
		assert.Error(t, err)
	})

	t.Run("nil report", func(t *testing.T) {
		assert.Error(t, store.SaveReport(ctx, nil))
	})
}
