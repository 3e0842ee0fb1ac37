package entities

import "math"

// Amounts are stored in kobo (1/100 naira).

func NairaToKobo(naira float64) int64 {
	return int64(math.Round(naira * 100))
}

func KoboToNaira(kobo int64) float64 {
	return float64(kobo) / 100
}
