package scoring

import "github.com/spiritatlas/entwine/internal/model"

// Numerology scores name-energy harmony between two profiles.
// Formula: 100 - |energyA - energyB| * 5, clamped to [60,95].
// Symmetric in its arguments.
func Numerology(a, b *model.Profile) model.DimensionScore {
	score, energyA, energyB := harmonyScore(a.Name, b.Name, 5.0)

	var insights []string
	if score >= 90 {
		insights = append(insights, "Name vibrations are in strong harmony")
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
