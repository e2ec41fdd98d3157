package model

// Dimension names one axis of compatibility.
type Dimension string

// The six compatibility dimensions.
const (
	DimensionNumerology    Dimension = "numerology"
	DimensionAstrology     Dimension = "astrology"
	DimensionTantric       Dimension = "tantric"
	DimensionEnergetic     Dimension = "energetic"
	DimensionCommunication Dimension = "communication"
	DimensionEmotional     Dimension = "emotional"
)

// Dimensions returns all dimensions in canonical evaluation order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionNumerology,
		DimensionAstrology,
		DimensionTantric,
		DimensionEnergetic,
		DimensionCommunication,
		DimensionEmotional,
	}
}

// DimensionScore is one calculator's output: a value in [0,100], an
// optional sub-factor breakdown, and free-text insight strings.
type DimensionScore struct {
	Value     float64
	Breakdown map[string]float64
	Insights  []string
}

// CompatibilityScores aggregates one score per dimension. It is derived
// once per analysis and never mutated afterwards.
type CompatibilityScores struct {
	Numerology    DimensionScore
	Astrology     DimensionScore
	Tantric       DimensionScore
	Energetic     DimensionScore
	Communication DimensionScore
	Emotional     DimensionScore
}

// Get returns the score for a dimension.
func (s CompatibilityScores) Get(d Dimension) DimensionScore {
	switch d {
	case DimensionNumerology:
		return s.Numerology
	case DimensionAstrology:
		return s.Astrology
	case DimensionTantric:
		return s.Tantric
	case DimensionEnergetic:
		return s.Energetic
	case DimensionCommunication:
		return s.Communication
	case DimensionEmotional:
		return s.Emotional
	}
	return DimensionScore{}
}

// Overall is the single source of truth for the combined score: the
// unweighted arithmetic mean of all six dimensions.
func (s CompatibilityScores) Overall() float64 {
	dims := Dimensions()
	var sum float64
	for _, d := range dims {
		sum += s.Get(d).Value
	}
	return sum / float64(len(dims))
}
