package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiritatlas/entwine/internal/model"
)

// scoresWith builds a score set with every dimension at base and the
// given overrides applied.
func scoresWith(base float64, overrides map[model.Dimension]float64) model.CompatibilityScores {
	value := func(d model.Dimension) model.DimensionScore {
		if v, ok := overrides[d]; ok {
			return model.DimensionScore{Value: v}
		}
		return model.DimensionScore{Value: base}
	}
	return model.CompatibilityScores{
		Numerology:    value(model.DimensionNumerology),
		Astrology:     value(model.DimensionAstrology),
		Tantric:       value(model.DimensionTantric),
		Energetic:     value(model.DimensionEnergetic),
		Communication: value(model.DimensionCommunication),
		Emotional:     value(model.DimensionEmotional),
	}
}

func TestGenerateInsights(t *testing.T) {
	t.Run("high scores trigger all three rules", func(t *testing.T) {
		insights := generateInsights(scoresWith(90, nil))
		require.Len(t, insights, 3)
		assert.Equal(t, model.InsightSoulConnection, insights[0].Category)
		assert.Equal(t, model.InsightPhysicalAttraction, insights[1].Category)
		assert.Equal(t, model.InsightCommunicationStyle, insights[2].Category)
	})

	t.Run("cutoffs are strict", func(t *testing.T) {
		scores := scoresWith(70, map[model.Dimension]float64{
			model.DimensionNumerology:    85, // exactly on cutoff, no insight
			model.DimensionTantric:       80,
			model.DimensionCommunication: 80,
		})
		assert.Empty(t, generateInsights(scores))
	})

	t.Run("middling scores yield none", func(t *testing.T) {
		assert.Empty(t, generateInsights(scoresWith(75, nil)))
	})
}

func TestIdentifyStrengths(t *testing.T) {
	t.Run("all four areas", func(t *testing.T) {
		strengths := identifyStrengths(scoresWith(90, nil))
		require.Len(t, strengths, 4)

		areas := make([]model.StrengthArea, 0, len(strengths))
		for _, s := range strengths {
			areas = append(areas, s.Area)
		}
		assert.Equal(t, []model.StrengthArea{
			model.StrengthSpiritualConnection,
			model.StrengthAstrologicalHarmony,
			model.StrengthSacredSexuality,
			model.StrengthEnergeticFlow,
		}, areas)
	})

	t.Run("energetic needs the higher cutoff", func(t *testing.T) {
		scores := scoresWith(60, map[model.Dimension]float64{
			model.DimensionEnergetic: 82, // clears 80 but not 85
		})
		assert.Empty(t, identifyStrengths(scores))
	})

	t.Run("strength carries its dimension score", func(t *testing.T) {
		scores := scoresWith(60, map[model.Dimension]float64{
			model.DimensionNumerology: 92,
		})
		strengths := identifyStrengths(scores)
		require.Len(t, strengths, 1)
		assert.InDelta(t, 92.0, strengths[0].Score, 0.001)
	})
}

func TestIdentifyChallenges(t *testing.T) {
	tests := []struct {
		name          string
		communication float64
		wantSeverity  model.Severity
	}{
		{"just under the cutoff is minor", 69, model.SeverityMinor},
		{"under sixty is moderate", 55, model.SeverityModerate},
		{"under fifty is major", 45, model.SeverityMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := scoresWith(80, map[model.Dimension]float64{
				model.DimensionCommunication: tt.communication,
			})
			challenges := identifyChallenges(scores)
			require.Len(t, challenges, 1)
			assert.Equal(t, model.ChallengeCommunication, challenges[0].Area)
			assert.Equal(t, tt.wantSeverity, challenges[0].Severity)
			assert.NotEmpty(t, challenges[0].Solutions)
		})
	}

	t.Run("low emotional score flags processing differences", func(t *testing.T) {
		scores := scoresWith(80, map[model.Dimension]float64{
			model.DimensionEmotional: 60,
		})
		challenges := identifyChallenges(scores)
		require.Len(t, challenges, 1)
		assert.Equal(t, model.ChallengeEmotionalProcessing, challenges[0].Area)
		assert.Equal(t, model.SeverityModerate, challenges[0].Severity)
	})

	t.Run("healthy scores yield no challenges", func(t *testing.T) {
		assert.Empty(t, identifyChallenges(scoresWith(85, nil)))
	})
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("baseline ritual always comes first", func(t *testing.T) {
		recs := buildRecommendations(scoresWith(50, nil))
		require.NotEmpty(t, recs)
		assert.Equal(t, "Sacred Morning Ritual", recs[0].Title)
		assert.Equal(t, model.PriorityHigh, recs[0].Priority)
	})

	t.Run("low communication adds the connection practice", func(t *testing.T) {
		recs := buildRecommendations(scoresWith(90, map[model.Dimension]float64{
			model.DimensionCommunication: 70,
		}))
		titles := make([]string, 0, len(recs))
		for _, r := range recs {
			titles = append(titles, r.Title)
		}
		assert.Contains(t, titles, "Daily Connection Practice")
	})

	t.Run("exactly one baseline", func(t *testing.T) {
		recs := buildRecommendations(scoresWith(90, nil))
		var count int
		for _, r := range recs {
			if r.Title == "Sacred Morning Ritual" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestBuildActionPlan(t *testing.T) {
	t.Run("always contains the unconditional immediate item", func(t *testing.T) {
		plan := buildActionPlan(nil, nil)
		require.NotEmpty(t, plan.ImmediateActions)
		assert.Equal(t, "Daily Heart Connection", plan.ImmediateActions[0].Title)
		assert.NotEmpty(t, plan.KeyMilestones)
	})

	t.Run("challenges map to their horizon", func(t *testing.T) {
		challenges := []model.Challenge{
			{Area: model.ChallengeCommunication},
			{Area: model.ChallengeEmotionalProcessing},
		}
		plan := buildActionPlan(challenges, nil)

		assert.Len(t, plan.ImmediateActions, 2, "communication work is immediate")
		assert.Len(t, plan.ShortTermGoals, 1, "emotional work is short term")
	})

	t.Run("spiritual strength feeds the long-term vision", func(t *testing.T) {
		strengths := []model.Strength{{Area: model.StrengthSpiritualConnection}}
		plan := buildActionPlan(nil, strengths)
		require.Len(t, plan.LongTermVision, 1)
		assert.Equal(t, model.TimeframeLongTerm, plan.LongTermVision[0].Timeframe)
	})
}
