package helper

import "math"

// Percentage returns part/total*100, 0 when total is 0.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Round1 rounds to one decimal place (UI convention for averages).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MeanRound1 averages values rounded to one decimal, 0 for an empty slice.
func MeanRound1(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Round1(sum / float64(len(values)))
}
