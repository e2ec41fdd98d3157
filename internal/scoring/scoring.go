// Package scoring implements the pure per-dimension compatibility
// calculators. Every calculator is a total function of two profiles:
// missing optional inputs fall back to documented defaults and the
// result is always clamped to [0,100]. The formulas are scoring
// heuristics, not astronomical or astrological computation.
package scoring

import "strings"

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nameEnergy derives a numeric "energy" from a name's vowel/consonant
// ratio. An empty or all-vowel name yields the neutral value 5.0, which
// doubles as the missing-name fallback.
func nameEnergy(name string) float64 {
	var vowels, consonants int
	for _, r := range strings.ToLower(name) {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r >= 'a' && r <= 'z':
			consonants++
		}
	}

	if consonants == 0 {
		return 5.0
	}
	return float64(vowels) / float64(consonants) * 10.0
}

// harmonyScore maps the absolute energy difference of two names onto a
// bounded score. Shared by the numerology and emotional calculators,
// which differ only in sensitivity.
func harmonyScore(nameA, nameB string, sensitivity float64) (score, energyA, energyB float64) {
	energyA = nameEnergy(nameA)
	energyB = nameEnergy(nameB)

	diff := energyA - energyB
	if diff < 0 {
		diff = -diff
	}

	return clamp(100.0-diff*sensitivity, 60.0, 95.0), energyA, energyB
}
