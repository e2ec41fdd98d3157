package scoring

import (
	"time"

	"github.com/spiritatlas/entwine/internal/model"
)

// element is the seasonal element derived from a birth month.
type element string

const (
	elementFire  element = "fire"  // spring
	elementEarth element = "earth" // summer
	elementAir   element = "air"   // fall
	elementWater element = "water" // winter
)

// elementForMonth maps a birth month to its seasonal element.
func elementForMonth(m time.Month) element {
	switch {
	case m >= time.March && m <= time.May:
		return elementFire
	case m >= time.June && m <= time.August:
		return elementEarth
	case m >= time.September && m <= time.November:
		return elementAir
	default:
		return elementWater
	}
}

// Astrology scores seasonal-element compatibility from birth months.
// A missing birth date defaults to January (water). Same element scores
// 85, fire/air 90, earth/water 88, any other pairing 75. Symmetric by
// construction of the lookup.
func Astrology(a, b *model.Profile) model.DimensionScore {
	elemA := elementForMonth(birthMonth(a))
	elemB := elementForMonth(birthMonth(b))

	var score float64
	switch {
	case elemA == elemB:
		score = 85.0
	case pairIs(elemA, elemB, elementFire, elementAir):
		score = 90.0
	case pairIs(elemA, elemB, elementEarth, elementWater):
		score = 88.0
	default:
		score = 75.0
	}

	var insights []string
	if score >= 88 {
		insights = append(insights, "Birth elements are naturally complementary")
	}

	return model.DimensionScore{
		Value: clamp(score, 0, 100),
		Breakdown: map[string]float64{
			"element_match": score,
		},
		Insights: insights,
	}
}

// birthMonth falls back to January when no birth date is recorded.
func birthMonth(p *model.Profile) time.Month {
	if p.BirthDateTime == nil {
		return time.January
	}
	return p.BirthDateTime.Month()
}

func pairIs(x, y, want1, want2 element) bool {
	return (x == want1 && y == want2) || (x == want2 && y == want1)
}
