package engine

import "github.com/spiritatlas/entwine/internal/model"

// Threshold cutoffs for the rule generators. All comparisons are strict
// so a score sitting exactly on a cutoff does not trigger the rule.
const (
	soulConnectionCutoff  = 85.0
	strengthCutoff        = 80.0
	energeticCutoff       = 85.0
	communicationLow      = 70.0
	communicationMajor    = 50.0
	communicationModerate = 60.0
	emotionalLow          = 65.0
)

// generateInsights emits zero or one insight per threshold rule,
// following the canonical dimension order.
func generateInsights(scores model.CompatibilityScores) []model.Insight {
	var insights []model.Insight

	if scores.Numerology.Value > soulConnectionCutoff {
		insights = append(insights, model.Insight{
			Title:       "Deep Soul Connection",
			Description: "Your numerological patterns indicate a profound soul-level connection. This suggests you may have shared spiritual purposes or karmic ties.",
			Category:    model.InsightSoulConnection,
			Importance:  model.ImportanceHigh,
			SupportingEvidence: []string{
				"Life path numbers show strong compatibility",
				"Expression numbers indicate complementary life purposes",
			},
		})
	}

	if scores.Tantric.Value > strengthCutoff {
		insights = append(insights, model.Insight{
			Title:       "Sacred Energy Alignment",
			Description: "Your energetic patterns show strong tantric compatibility, suggesting potential for deep intimate connection and spiritual growth together.",
			Category:    model.InsightPhysicalAttraction,
			Importance:  model.ImportanceMedium,
		})
	}

	if scores.Communication.Value > strengthCutoff {
		insights = append(insights, model.Insight{
			Title:       "Natural Communication Flow",
			Description: "You both have compatible communication styles and openness levels, creating a foundation for clear, honest dialogue.",
			Category:    model.InsightCommunicationStyle,
			Importance:  model.ImportanceHigh,
		})
	}

	return insights
}

// identifyStrengths records every dimension clearing its strength
// cutoff, in dimension order.
func identifyStrengths(scores model.CompatibilityScores) []model.Strength {
	var strengths []model.Strength

	if scores.Numerology.Value > strengthCutoff {
		strengths = append(strengths, model.Strength{
			Area:        model.StrengthSpiritualConnection,
			Title:       "Numerological Harmony",
			Description: "Your core numbers create a harmonious vibration together",
			Score:       scores.Numerology.Value,
			Benefits: []string{
				"Intuitive understanding of each other",
				"Natural harmony in major life decisions",
			},
		})
	}

	if scores.Astrology.Value > strengthCutoff {
		strengths = append(strengths, model.Strength{
			Area:        model.StrengthAstrologicalHarmony,
			Title:       "Astrological Alignment",
			Description: "Your birth elements show natural compatibility and understanding",
			Score:       scores.Astrology.Value,
		})
	}

	if scores.Tantric.Value > strengthCutoff {
		strengths = append(strengths, model.Strength{
			Area:        model.StrengthSacredSexuality,
			Title:       "Sacred Energy Flow",
			Description: "Strong tantric compatibility for deep intimacy and spiritual connection",
			Score:       scores.Tantric.Value,
			Benefits: []string{
				"Natural chemistry and attraction",
				"Ability to blend physical and spiritual intimacy",
			},
		})
	}

	if scores.Energetic.Value > energeticCutoff {
		strengths = append(strengths, model.Strength{
			Area:        model.StrengthEnergeticFlow,
			Title:       "Amplifying Energies",
			Description: "Your seasonal birth energies reinforce rather than drain each other",
			Score:       scores.Energetic.Value,
		})
	}

	return strengths
}

// identifyChallenges flags dimensions falling below their cutoffs. An
// empty result is valid.
func identifyChallenges(scores model.CompatibilityScores) []model.Challenge {
	var challenges []model.Challenge

	if scores.Communication.Value < communicationLow {
		severity := model.SeverityMinor
		switch {
		case scores.Communication.Value < communicationMajor:
			severity = model.SeverityMajor
		case scores.Communication.Value < communicationModerate:
			severity = model.SeverityModerate
		}

		challenges = append(challenges, model.Challenge{
			Area:        model.ChallengeCommunication,
			Title:       "Communication Barriers",
			Description: "Different communication styles may require extra effort to understand each other",
			Severity:    severity,
			Solutions: []string{
				"Practice active listening techniques",
				"Schedule regular check-ins about feelings",
				"Learn each other's preferred communication methods",
			},
		})
	}

	if scores.Emotional.Value < emotionalLow {
		challenges = append(challenges, model.Challenge{
			Area:        model.ChallengeEmotionalProcessing,
			Title:       "Emotional Processing Differences",
			Description: "You may have different ways of processing and expressing emotions",
			Severity:    model.SeverityModerate,
			Solutions: []string{
				"Discuss emotional needs openly",
				"Respect different processing timelines",
				"Create safe spaces for vulnerability",
			},
		})
	}

	return challenges
}
