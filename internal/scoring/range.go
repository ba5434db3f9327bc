// Package scoring computes bounded, explainable relevance scores for listings.
//
// Leaf scorers (Range, OrientationPoints, EnergyClassPoints) feed two
// composite scorers: ScoreSearch for general property search and ScorePV for
// photovoltaic suitability. Every function is pure and total; unknown
// attributes get neutral credit and non-finite intermediates get none.
package scoring

import "math"

// ToleranceRatio is the share of the reference span granted as partial
// credit outside a bound.
const ToleranceRatio = 0.2

// NeutralRangeScore is returned when the candidate value is unknown.
const NeutralRangeScore = 0.5

// Range scores value against an optional [min, max] target, in [0, 1].
//
// Inside the target the score is 1. Outside, it decays linearly to 0 over a
// tolerance window: 20% of (max-min) when both bounds are set, 20% of the
// single bound otherwise, and 1 unit when that reference is zero.
func Range(value, min, max *float64) float64 {
	if value == nil {
		return NeutralRangeScore
	}
	if min == nil && max == nil {
		return 1
	}

	v := *value
	if !isFinite(v) {
		return 0
	}

	var score float64
	switch {
	case min != nil && max != nil:
		lo, hi := *min, *max
		if lo > hi {
			lo, hi = hi, lo
		}
		tol := tolerance(hi - lo)
		switch {
		case v < lo:
			score = decay(lo-v, tol)
		case v > hi:
			score = decay(v-hi, tol)
		default:
			score = 1
		}
	case min != nil:
		score = 1
		if v < *min {
			score = decay(*min-v, tolerance(*min))
		}
	default:
		score = 1
		if v > *max {
			score = decay(v-*max, tolerance(*max))
		}
	}

	if !isFinite(score) {
		return 0
	}
	return score
}

func tolerance(reference float64) float64 {
	t := ToleranceRatio * math.Abs(reference)
	if t == 0 {
		return 1
	}
	return t
}

// decay gives linear partial credit for a value gap beyond a bound
func decay(gap, tol float64) float64 {
	return math.Max(0, 1-gap/tol)
}
