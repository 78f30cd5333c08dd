// Package floatutils provides utilities for working with floats, including
// the numeric kernel shared by the tabular learners.
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Bellman applies a single Bellman update to an old value estimate and
// returns the revised estimate:
//
//	old + learningRate * (reward + discount*bestFuture - old)
//
// See https://en.wikipedia.org/wiki/Bellman_equation
func Bellman(old, learningRate, reward, discount, bestFuture float64) float64 {
	return old + learningRate*(reward+discount*bestFuture-old)
}

// BayesianAverage returns the Bayesian weighted average
//
//	(c*mean + n*observed) / (c + n)
//
// where c is the prior confidence in mean (typically the number of
// observations needed before an observed value is trusted over the
// mean) and n is the number of times observed has been observed. As n
// grows relative to c, the result moves from mean towards observed.
// If c + n is zero, 0 is returned.
//
// See https://en.wikipedia.org/wiki/Bayesian_average
func BayesianAverage(c, n, mean, observed float64) float64 {
	return SafeDivide(c*mean+n*observed, c+n)
}

// SafeDivide returns a / b, or 0 if b is 0
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// EqualWithin returns whether a and b differ by no more than tol
func EqualWithin(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// Sum returns the sum of values, or 0 for an empty slice
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// MaxSlice gets the maximum value and the indices of all values in a
// slice of float64 that are within tol of that maximum, so that values
// separated only by floating point accumulation error are treated as
// tied. NaN values are ignored. If there are no values other than NaN,
// -Inf and no indices are returned.
func MaxSlice(values []float64, tol float64) (max float64, indices []int) {
	max = math.Inf(-1)
	found := false
	for _, value := range values {
		if math.IsNaN(value) {
			continue
		}
		if !found || value > max {
			max = value
			found = true
		}
	}
	if !found {
		return math.Inf(-1), nil
	}

	for i, value := range values {
		if !math.IsNaN(value) && (value == max || EqualWithin(value, max, tol)) {
			indices = append(indices, i)
		}
	}
	return
}
