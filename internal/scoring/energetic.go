package scoring

import (
	"time"

	"github.com/spiritatlas/entwine/internal/model"
)

type season string

const (
	seasonWinter season = "winter"
	seasonSpring season = "spring"
	seasonSummer season = "summer"
	seasonFall   season = "fall"
)

func seasonForMonth(m time.Month) season {
	switch m {
	case time.December, time.January, time.February:
		return seasonWinter
	case time.March, time.April, time.May:
		return seasonSpring
	case time.June, time.July, time.August:
		return seasonSummer
	case time.September, time.October, time.November:
		return seasonFall
	}
	return seasonWinter
}

// complementarySeasons reports whether two seasons sit opposite on the
// wheel of the year.
func complementarySeasons(x, y season) bool {
	return (x == seasonSpring && y == seasonFall) ||
		(x == seasonFall && y == seasonSpring) ||
		(x == seasonSummer && y == seasonWinter) ||
		(x == seasonWinter && y == seasonSummer)
}

// Energetic scores birth-season energy compatibility. Base 70; when
// both birth dates are known, same season adds 20, opposite seasons add
// 25, anything else adds 10. Capped at 100.
func Energetic(a, b *model.Profile) model.DimensionScore {
	score := 70.0
	breakdown := map[string]float64{"base": 70.0}

	if a.BirthDateTime != nil && b.BirthDateTime != nil {
		seasonA := seasonForMonth(a.BirthDateTime.Month())
		seasonB := seasonForMonth(b.BirthDateTime.Month())

		var bonus float64
		switch {
		case seasonA == seasonB:
			bonus = 20.0
		case complementarySeasons(seasonA, seasonB):
			bonus = 25.0
		default:
			bonus = 10.0
		}
		score += bonus
		breakdown["season_energy"] = bonus
	}

	var insights []string
	if score >= 90 {
		insights = append(insights, "Seasonal energies amplify each other")
	}

	return model.DimensionScore{
		Value:     clamp(score, 0, 100),
		Breakdown: breakdown,
		Insights:  insights,
	}
}
