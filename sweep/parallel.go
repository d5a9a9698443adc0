// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"fmt"
	"runtime"

	"cogentcore.org/lab/base/randx"
	"github.com/emer/matneuron"
	"golang.org/x/sync/errgroup"
)

// Parallel runs the same Experiment once per seed, each on its own
// clone of tmpl reseeded with that seed, and returns the spike counts
// summed across seeds.  tmpl itself is not modified.  At most
// GOMAXPROCS experiments run at once.  The context only stops
// experiments that have not started yet.
func Parallel(ctx context.Context, tmpl *Sim, seeds randx.Seeds, window, dt float64, excRates, inhRates []float64) ([]int, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds given", matneuron.ErrInvalidParam)
	}
	if len(excRates) != len(inhRates) {
		return nil, fmt.Errorf("%w: %d excitatory rates vs. %d inhibitory rates", matneuron.ErrInvalidParam, len(excRates), len(inhRates))
	}
	results := make([][]int, len(seeds))
	sims := make([]*Sim, len(seeds))
	for i, seed := range seeds {
		ss := tmpl.Clone()
		ss.Verbose = false
		ss.Neuron.SetRandSeed(seed)
		sims[i] = ss
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range sims {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cnts, err := sims[i].Experiment(window, dt, excRates, inhRates)
			if err != nil {
				return err
			}
			results[i] = cnts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return SumCounts(results...), nil
}

// SumCounts adds count lists elementwise, in order.  The result has the
// length of the longest list.
func SumCounts(counts ...[]int) []int {
	n := 0
	for _, c := range counts {
		n = max(n, len(c))
	}
	sum := make([]int, n)
	for _, c := range counts {
		for i, v := range c {
			sum[i] += v
		}
	}
	return sum
}

// RunSeeds returns n seeds for parallel runs: consecutive values from
// base if base is nonzero, otherwise fresh time-based seeds.
func RunSeeds(n int, base int64) randx.Seeds {
	var seeds randx.Seeds
	seeds.Init(n)
	if base != 0 {
		for i := range seeds {
			seeds[i] = base + int64(i)
		}
	}
	return seeds
}
