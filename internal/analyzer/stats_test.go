package analyzer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if mean(nil) != 0 {
		t.Error("Expected mean of empty slice to be 0")
	}
	if !almostEqual(mean([]float64{1, 2, 3, 4}), 2.5) {
		t.Errorf("Unexpected mean: %v", mean([]float64{1, 2, 3, 4}))
	}
	if !almostEqual(mean([]float64{-5, 5}), 0) {
		t.Error("Expected symmetric values to average to 0")
	}
}

func TestPopulationStd(t *testing.T) {
	// Population std divides by N: for {2, 4, 4, 4, 5, 5, 7, 9} it is exactly 2.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	m := mean(values)
	if !almostEqual(populationStd(values, m), 2) {
		t.Errorf("Expected population std 2, got %v", populationStd(values, m))
	}

	if populationStd([]float64{7, 7, 7}, 7) != 0 {
		t.Error("Expected zero std for identical values")
	}
	if populationStd(nil, 0) != 0 {
		t.Error("Expected zero std for empty slice")
	}
}

func TestLeastSquaresSlope(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"perfect ascent", []float64{10, 20, 30}, 10},
		{"perfect descent", []float64{30, 20, 10}, -10},
		{"flat", []float64{5, 5, 5, 5}, 0},
		{"two points", []float64{1, 4}, 3},
		{"noisy ascent", []float64{1, 3, 2, 5}, 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := leastSquaresSlope(tt.values)
			if !almostEqual(got, tt.expected) {
				t.Errorf("leastSquaresSlope(%v) = %v, expected %v", tt.values, got, tt.expected)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		// Round-half-to-even at the boundary.
		{0.125, 0.12},
		{0.135, 0.14},
		{-1.005, -1.0},
		{2, 2},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.out {
			t.Errorf("round2(%v) = %v, expected %v", tt.in, got, tt.out)
		}
	}
}
