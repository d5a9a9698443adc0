// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package poisson provides the Poisson event-count sampler used to drive
shot-noise conductances.  Counts are drawn by inverting the Poisson CDF
with the standard pmf recurrence, from a single uniform draw of the
given random source.  The sampler holds no state of its own: independent
conductances only share whatever random source they are handed.
*/
package poisson

import (
	"math"

	"cogentcore.org/lab/base/randx"
)

// MaxRate is the largest rate for which the CDF recurrence is used.
// Beyond it exp(-rate) underflows, and a rounded normal approximation
// is returned instead.
const MaxRate = 700

// Sample returns a Poisson-distributed event count with mean rate,
// as the smallest k such that the Poisson CDF at k exceeds a uniform
// draw in [0,1) from rnd.  Rates that are negative or NaN return 0.
func Sample(rate float64, rnd randx.Rand) int {
	if !(rate > 0) {
		return 0
	}
	if rate > MaxRate {
		k := math.Round(rate + math.Sqrt(rate)*rnd.NormFloat64())
		return int(math.Max(k, 0))
	}
	u := rnd.Float64()
	cum := 0.0
	pmf := math.Exp(-rate)
	k := 0
	for u >= cum {
		cum += pmf
		k++
		pmf *= rate / float64(k)
		if float64(k) > rate && cum+pmf == cum { // cum has converged below u
			return k - 1
		}
	}
	return k - 1
}

// Mean returns the empirical mean of n samples at given rate.
func Mean(rate float64, n int, rnd randx.Rand) float64 {
	if n <= 0 {
		return 0
	}
	sum := 0
	for i := 0; i < n; i++ {
		sum += Sample(rate, rnd)
	}
	return float64(sum) / float64(n)
}
