package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divides actual by base scaled to a percentage, with the defined
// result 0 when base is 0.
func SafeRatio(actual, base float64) float64 {
	if base == 0 {
		return 0
	}

	return actual / base * 100
}
