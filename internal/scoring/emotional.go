package scoring

import "github.com/spiritatlas/entwine/internal/model"

// Emotional reuses the name-energy harmony formula with a sharper
// sensitivity multiplier (10 vs numerology's 5), making it an
// intentionally weaker signal for the same inputs.
func Emotional(a, b *model.Profile) model.DimensionScore {
	score, energyA, energyB := harmonyScore(a.Name, b.Name, 10.0)

	var insights []string
	if score < 65 {
		insights = append(insights, "Emotional processing styles likely differ")
	}

	return model.DimensionScore{
		Value: clamp(score, 0, 100),
		Breakdown: map[string]float64{
			"name_energy_a": energyA,
			"name_energy_b": energyB,
		},
		Insights: insights,
	}
}
