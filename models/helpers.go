package models

import "math"

// Round2 normalizes a decimal to 2 fractional digits (rating, price)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
