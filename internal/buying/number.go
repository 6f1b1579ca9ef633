package buying

import "math"

// finite maps NaN and ±Inf to 0. Every quantity read by Aggregate passes
// through it.
func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
