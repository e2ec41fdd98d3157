package scoring

import "github.com/spiritatlas/entwine/internal/model"

// Tantric scores energetic polarity and birth-hour rhythm. Starts from
// a base of 75, adds bonuses for gender polarity and hour proximity or
// day/night complement, and caps at 100. Bonuses only apply when both
// profiles carry the relevant field; absent fields contribute nothing.
func Tantric(a, b *model.Profile) model.DimensionScore {
	score := 75.0
	breakdown := map[string]float64{"base": 75.0}

	if a.Gender != model.GenderUnknown && b.Gender != model.GenderUnknown {
		var bonus float64
		if a.Gender != b.Gender {
			bonus = 15.0 // complementary energies
		} else {
			bonus = 5.0
		}
		score += bonus
		breakdown["gender_polarity"] = bonus
	}

	if a.BirthDateTime != nil && b.BirthDateTime != nil {
		hourDiff := a.BirthDateTime.Hour() - b.BirthDateTime.Hour()
		if hourDiff < 0 {
			hourDiff = -hourDiff
		}

		var bonus float64
		switch {
		case hourDiff <= 2 || hourDiff >= 22:
			bonus = 10.0 // similar energy cycles
		case hourDiff >= 10 && hourDiff <= 14:
			bonus = 15.0 // complementary day/night energies
		default:
			bonus = 5.0
		}
		score += bonus
		breakdown["hour_rhythm"] = bonus
	}

	var insights []string
	if score >= 90 {
		insights = append(insights, "Exceptional tantric energy alignment")
	}

	return model.DimensionScore{
		Value:     clamp(score, 0, 100),
		Breakdown: breakdown,
		Insights:  insights,
	}
}
