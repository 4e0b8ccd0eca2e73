package analyzer

import "math"

// The statistical routines below are deliberately hand-rolled closed forms.
// Outlier flags, trend labels and risk scores are part of the report
// contract, so the exact formulas matter more than a general statistics
// dependency could guarantee.

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStd returns the population standard deviation (divide by N, not
// N-1) around the given mean.
func populationStd(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// leastSquaresSlope fits a degree-1 least-squares line of values against the
// index sequence 0..n-1 and returns the slope. Callers guarantee n >= 2.
func leastSquaresSlope(values []float64) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// round2 rounds to 2 decimal places using round-half-to-even, matching the
// banker's rounding applied to monetary decimals.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
