package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiritatlas/entwine/internal/model"
)

func testReport() *model.CompatibilityReport {
	a := model.NewProfile("alice")
	a.DisplayName = "Alice"
	b := model.NewProfile("bob")
	b.DisplayName = "Bob"

	return &model.CompatibilityReport{
		ID:       "report-1",
		ProfileA: a,
		ProfileB: b,
		Scores: model.CompatibilityScores{
			Numerology:    model.DimensionScore{Value: 88},
			Astrology:     model.DimensionScore{Value: 90},
			Tantric:       model.DimensionScore{Value: 95},
			Energetic:     model.DimensionScore{Value: 90},
			Communication: model.DimensionScore{Value: 80},
			Emotional:     model.DimensionScore{Value: 75},
		},
		Strengths: []model.Strength{{
			Area:  model.StrengthSacredSexuality,
			Title: "Sacred Energy Flow",
			Score: 95,
		}},
		Challenges: []model.Challenge{{
			Area:      model.ChallengeEmotionalProcessing,
			Title:     "Emotional Processing Differences",
			Severity:  model.SeverityModerate,
			Solutions: []string{"Discuss emotional needs openly"},
		}},
		Recommendations: []model.Recommendation{{
			Title:    "Sacred Morning Ritual",
			Priority: model.PriorityHigh,
		}},
		ActionPlan: model.ActionPlan{
			ImmediateActions: []model.ActionItem{{
				Title:     "Daily Heart Connection",
				Frequency: "Daily",
			}},
			KeyMilestones: []string{"Month 1: Establish daily connection rituals"},
		},
		RelationshipDynamics:  "Balanced partnership",
		OverallRecommendation: "Nurture your natural connection",
		GeneratedAt:           time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	out := Render(testReport())

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Alice + Bob")
	assert.Contains(t, out, "Numerology")
	assert.Contains(t, out, "Sacred Morning Ritual")
	assert.Contains(t, out, "Daily Heart Connection")
	assert.Contains(t, out, "Emotional Processing Differences")
	assert.Contains(t, out, "Nurture your natural connection")
}

func TestRenderWithAIInsights(t *testing.T) {
	report := testReport()
	report.AIInsights = &model.AIInsightBundle{
		OverallSummary: "A well-matched pairing.",
		Karmic: &model.AIDimensionInsight{
			Dimension: "karmic",
			Analysis:  "Past-life ties are indicated.",
		},
	}

	out := Render(report)
	assert.Contains(t, out, "A well-matched pairing.")
	assert.Contains(t, out, "Past-life ties are indicated.")
}

func TestPlainText(t *testing.T) {
	out := PlainText(testReport())

	assert.Contains(t, out, "Alice + Bob")
	assert.Contains(t, out, "March 1, 2025")
	assert.Contains(t, out, "86.3/100")
	assert.Contains(t, out, "+ Sacred Energy Flow")
	assert.Contains(t, out, "- Emotional Processing Differences (moderate)")
	assert.Contains(t, out, "Nurture your natural connection")

	// shareable text must carry no ANSI styling
	assert.False(t, strings.Contains(out, "\x1b["), "plain text output must not contain escape codes")
}
