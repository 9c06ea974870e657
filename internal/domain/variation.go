package domain

import "math"

// Variation — изменение в процентах от reference к current.
// ok=false, если опорная цена нулевая или не число.
func Variation(current, reference float64) (pct float64, ok bool) {
	if reference == 0 || math.IsNaN(reference) || math.IsInf(reference, 0) {
		return 0, false
	}
	return (current - reference) / reference * 100, true
}

// IsValidPrice — цена положительная и конечная
func IsValidPrice(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
