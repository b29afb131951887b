package parser

import (
	"math"
	"sort"
)

// Percentile computes the p-quantile (0 <= p <= 1) of values with linear
// interpolation between closest ranks. The input slice is not modified.
// Panics on an empty slice; callers guard for that.
func Percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
