// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"math"

	"cogentcore.org/lab/base/randx"
)

// LogSpace returns n values evenly spaced on a log10 scale,
// from 10^lo to 10^hi inclusive.
func LogSpace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = math.Pow(10, lo)
		return vals
	}
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = math.Pow(10, lo+float64(i)*step)
	}
	return vals
}

// BalancedRates maps a stimulus intensity onto excitatory and
// inhibitory event rates.  Excitation scales with intensity from exc0,
// and inhibition follows with balance factor b: b = 0 keeps inhibition
// fixed at inh0, b = 1 scales it with intensity like excitation.
func BalancedRates(intensity, b, exc0, inh0 float64) (exc, inh float64) {
	exc = exc0 * intensity
	inh = inh0 * (1 + b*(intensity-1))
	return
}

// Schedule repeats each intensity the given number of times, shuffles
// the result with rnd, and returns the corresponding excitatory and
// inhibitory rates from BalancedRates, along with the shuffled intensities.
func Schedule(intensities []float64, repeats int, b, exc0, inh0 float64, rnd randx.Rand) (ints, exc, inh []float64) {
	repeats = max(repeats, 1)
	n := len(intensities) * repeats
	rep := make([]float64, 0, n)
	for _, in := range intensities {
		for range repeats {
			rep = append(rep, in)
		}
	}
	perm := rnd.Perm(n)
	ints = make([]float64, n)
	exc = make([]float64, n)
	inh = make([]float64, n)
	for i, pi := range perm {
		ints[i] = rep[pi]
		exc[i], inh[i] = BalancedRates(ints[i], b, exc0, inh0)
	}
	return
}
