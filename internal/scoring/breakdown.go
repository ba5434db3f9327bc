package scoring

import (
	"math"

	"propscore/internal/model"
)

// newBreakdown sums the contributions, rounds once at the total and clamps
// it to [0, 100]. Non-finite contributions are replaced by 0 in place.
func newBreakdown(contributions map[string]float64, label func(int) string) model.ScoreBreakdown {
	var sum float64
	for name, points := range contributions {
		if !isFinite(points) {
			points = 0
			contributions[name] = 0
		}
		sum += points
	}

	total := int(clamp(math.Round(sum), 0, 100))

	return model.ScoreBreakdown{
		Total:         total,
		Label:         label(total),
		Contributions: contributions,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
