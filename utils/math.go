package utils

import "math"

// RoundMoney rounds a monetary amount to two decimals, matching the
// decimal(15,2) columns it is stored in.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
