// Package search drives layout optimization: a simulated annealing chain
// for global search and an exhaustive neighborhood climb for local
// refinement, both feeding a bounded tracker of the best layouts seen.
package search

import (
	"math"
	"math/rand"
)

// Annealing schedule constants, calibrated for the scale of the scaled
// penalty the scorer outputs.
const (
	t0 = 1.5
	k  = 10.0
	p0 = 1.0

	// NumIterations is the fixed length of one annealing generation.
	NumIterations = 10000
)

// temperature computes T(i) = T0 * exp(-i*k/N) for iteration i in [1, N].
func temperature(i int) float64 {
	return t0 * math.Exp(-float64(i)*k/NumIterations)
}

// cutoffP computes the acceptance probability p(dE, i) = p0 * exp(-dE/T(i))
// for a score-worsening transition.
func cutoffP(de float64, i int) float64 {
	return p0 * math.Exp(-de/temperature(i))
}

// AcceptTransition decides whether to accept a candidate whose scaled
// penalty differs from the current baseline by de at iteration i.
// Improvements are always accepted; regressions are accepted with a
// probability that shrinks as the schedule cools.
func AcceptTransition(rng *rand.Rand, de float64, i int) bool {
	if de < 0 {
		return true
	}
	return rng.Float64() < cutoffP(de, i)
}
