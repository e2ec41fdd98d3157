package engine

import "github.com/spiritatlas/entwine/internal/model"

// buildRecommendations always emits the baseline ritual first, then
// score-conditional practices. It never fails.
func buildRecommendations(scores model.CompatibilityScores) []model.Recommendation {
	recommendations := []model.Recommendation{
		{
			Title:       "Sacred Morning Ritual",
			Description: "Begin each day with 5 minutes of synchronized breathing while maintaining eye contact",
			Priority:    model.PriorityHigh,
		},
	}

	if scores.Communication.Value < strengthCutoff {
		recommendations = append(recommendations, model.Recommendation{
			Title:       "Daily Connection Practice",
			Description: "Set aside 15 minutes each evening to share your day without judgment or advice-giving",
			Priority:    model.PriorityHigh,
		})
	}

	if scores.Tantric.Value > strengthCutoff {
		recommendations = append(recommendations, model.Recommendation{
			Title:       "Energy Exchange Meditation",
			Description: "Practice palm-to-palm energy sharing meditation weekly to deepen your connection",
			Priority:    model.PriorityMedium,
		})
	}

	return recommendations
}

// buildActionPlan groups actions by time horizon. Challenge and
// strength areas without a mapping contribute nothing; the plan always
// contains at least the unconditional immediate item.
func buildActionPlan(challenges []model.Challenge, strengths []model.Strength) model.ActionPlan {
	plan := model.ActionPlan{
		ImmediateActions: []model.ActionItem{
			{
				Title:           "Daily Heart Connection",
				Description:     "Spend 10 minutes each day in eye contact and synchronized breathing",
				Timeframe:       model.TimeframeImmediate,
				Frequency:       "Daily",
				Difficulty:      model.DifficultyEasy,
				ExpectedOutcome: "Increased intimacy and emotional connection",
			},
		},
		KeyMilestones: []string{
			"Month 1: Establish daily connection rituals",
			"Month 3: Resolve primary communication challenges",
			"Month 6: Develop shared spiritual practices",
			"Month 12: Achieve deeper tantric and sacred connection",
		},
	}

	for _, challenge := range challenges {
		switch challenge.Area {
		case model.ChallengeCommunication:
			plan.ImmediateActions = append(plan.ImmediateActions, model.ActionItem{
				Title:           "Communication Check-ins",
				Description:     "Implement daily 15-minute communication sessions without devices",
				Timeframe:       model.TimeframeImmediate,
				Frequency:       "Daily",
				Difficulty:      model.DifficultyModerate,
				ExpectedOutcome: "Improved communication flow and understanding",
			})
		case model.ChallengeEmotionalProcessing:
			plan.ShortTermGoals = append(plan.ShortTermGoals, model.ActionItem{
				Title:           "Emotional Check-in Rituals",
				Description:     "Weekly dedicated time to validate and explore each other's emotional needs",
				Timeframe:       model.TimeframeShortTerm,
				Frequency:       "Weekly",
				Difficulty:      model.DifficultyModerate,
				ExpectedOutcome: "Better aligned emotional understanding",
			})
		case model.ChallengeIntimacy:
			plan.ShortTermGoals = append(plan.ShortTermGoals, model.ActionItem{
				Title:           "Intimacy Exploration Sessions",
				Description:     "Weekly dedicated time to explore and discuss intimacy preferences",
				Timeframe:       model.TimeframeShortTerm,
				Frequency:       "Weekly",
				Difficulty:      model.DifficultyModerate,
				ExpectedOutcome: "Better aligned intimacy and deeper connection",
			})
		}
	}

	for _, strength := range strengths {
		switch strength.Area {
		case model.StrengthSpiritualConnection:
			plan.LongTermVision = append(plan.LongTermVision, model.ActionItem{
				Title:           "Spiritual Partnership Development",
				Description:     "Develop shared spiritual practices and explore your joint soul purpose",
				Timeframe:       model.TimeframeLongTerm,
				Frequency:       "Ongoing",
				Difficulty:      model.DifficultyAdvanced,
				ExpectedOutcome: "Deep spiritual partnership and shared life mission",
			})
		case model.StrengthAstrologicalHarmony, model.StrengthSacredSexuality, model.StrengthEnergeticFlow:
			// no long-term mapping
		}
	}

	return plan
}
