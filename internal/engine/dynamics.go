package engine

import "github.com/spiritatlas/entwine/internal/model"

// describeDynamics summarizes how the couple functions as a unit,
// derived from the communication and tantric dimensions.
func describeDynamics(scores model.CompatibilityScores) string {
	switch {
	case scores.Communication.Value >= 80 && scores.Tantric.Value >= 80:
		return "Balanced partnership with mutual respect and a collaborative decision-making style"
	case scores.Communication.Value >= 80:
		return "Strong verbal partnership; intimacy will deepen as energetic practices develop"
	case scores.Tantric.Value >= 80:
		return "Strong energetic bond; conscious communication work will round out the partnership"
	default:
		return "A growing partnership that benefits from deliberate connection rituals"
	}
}

// overallRecommendation produces the closing guidance line for a report.
func overallRecommendation(scores model.CompatibilityScores) string {
	overall := scores.Overall()
	switch {
	case overall >= 85:
		return "This is a spiritually significant partnership with excellent growth potential. Nurture your natural connection with shared practice."
	case overall >= 70:
		return "A solid foundation with real growth potential. Focus on the flagged challenge areas while building on your strengths."
	default:
		return "This connection asks for conscious effort. Start with the immediate actions and revisit the analysis as your profiles deepen."
	}
}
