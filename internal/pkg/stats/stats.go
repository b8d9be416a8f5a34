// Package stats provides the small set of descriptive statistics used by the forecast engine.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a series of non-negative integer observations.
// The zero Summary describes an empty series.
type Summary struct {
	Count int
	Mean  float64
	Std   float64 // sample standard deviation (n-1); 0 when Count < 2
	Min   int
	Max   int
}

// Describe computes Summary for values. An empty series yields all zeros.
func Describe(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		// gonum reports NaN for a single observation.
		std = 0
	}

	return Summary{
		Count: len(xs),
		Mean:  mean,
		Std:   std,
		Min:   int(floats.Min(xs)),
		Max:   int(floats.Max(xs)),
	}
}

// Round rounds half to even and converts to int.
func Round(x float64) int {
	return int(scalar.RoundEven(x, 0))
}

// RoundTo rounds x half to even at the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	return scalar.RoundEven(x, places)
}
