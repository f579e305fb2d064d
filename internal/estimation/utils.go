package estimation

import "math"

// round2 rounds to two decimal places for presentation. Intermediate values
// stay unrounded so rounding error does not compound across phases.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
