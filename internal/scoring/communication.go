package scoring

import "github.com/spiritatlas/entwine/internal/model"

// Communication uses profile completion as a proxy for openness: the
// average completion percentage of both profiles, adjusted by the gap
// between them, buckets into four score tiers.
func Communication(a, b *model.Profile) model.DimensionScore {
	pctA := model.CalculateCompletion(a).Percentage
	pctB := model.CalculateCompletion(b).Percentage

	avg := (pctA + pctB) / 2.0
	gap := pctA - pctB
	if gap < 0 {
		gap = -gap
	}

	var score float64
	switch {
	case avg >= 80 && gap <= 20:
		score = 90.0
	case avg >= 60 && gap <= 30:
		score = 80.0
	case avg >= 40:
		score = 70.0
	default:
		score = 60.0
	}

	var insights []string
	if score >= 90 {
		insights = append(insights, "Both partners show high openness")
	}

	return model.DimensionScore{
		Value: clamp(score, 0, 100),
		Breakdown: map[string]float64{
			"avg_completion": avg,
			"completion_gap": gap,
		},
		Insights: insights,
	}
}
