package utils

import "math"

// Round2 rounds to two decimal places, the precision order totals are
// stored and displayed with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
