// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"context"
	"io"
	"os"
	"slices"

	"cogentcore.org/lab/base/mpi"
	"cogentcore.org/lab/base/randx"
	"github.com/emer/matneuron/chans"
	"github.com/emer/matneuron/mat"
	"github.com/emer/matneuron/neuron"
)

// NewSim builds the neuron and its two input conductances from cfg.
func NewSim(cfg *Config) (*Sim, error) {
	thrs, err := mat.Presets(cfg.Neuron.Cells...)
	if err != nil {
		return nil, err
	}
	nrn, err := neuron.New(cfg.Neuron.Erest, cfg.Neuron.R, cfg.Neuron.C, thrs...)
	if err != nil {
		return nil, err
	}
	ic := &cfg.Input
	exc, err := chans.NewShotNoise(ic.ExcRate, ic.ExcGPeak, ic.ExcErev, ic.ExcTau)
	if err != nil {
		return nil, err
	}
	inh, err := chans.NewShotNoise(ic.InhRate, ic.InhGPeak, ic.InhErev, ic.InhTau)
	if err != nil {
		return nil, err
	}
	return New(nrn, exc, inh), nil
}

// RunSim runs the full intensity sweep described by cfg and writes
// the summed counts table to standard output.
func RunSim(cfg *Config) error {
	return WriteSweep(cfg, os.Stdout)
}

// WriteSweep runs a shuffled schedule of log-spaced intensities,
// presented to Runs seeded copies of the neuron in parallel, and writes
// the summed counts to w as a tab-separated table.  Only rank 0 writes.
func WriteSweep(cfg *Config, w io.Writer) error {
	ss, err := NewSim(cfg)
	if err != nil {
		return err
	}
	ic := &cfg.Input
	rc := &cfg.Run
	seeds := RunSeeds(max(rc.Runs, 1), rc.Seed)
	rnd := randx.NewSysRand(ScheduleSeed(seeds))
	ints, excRates, inhRates := Schedule(LogSpace(ic.LogLo, ic.LogHi, ic.NIntensities), ic.Repeats, ic.Balance, ic.ExcRate, ic.InhRate, rnd)

	if cfg.Verbose {
		if cfg.Note != "" {
			mpi.Printf("Note: %s\n", cfg.Note)
		}
		mpi.Printf("Running %d Runs of %d windows\n", len(seeds), len(excRates))
	}
	counts, err := Parallel(context.Background(), ss, seeds, rc.Window, rc.Dt, excRates, inhRates)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		mpi.Printf("%s\n", ss.Neuron.SizeReport())
	}
	dt, err := CountsTable(ss.Neuron.ThrNames(), ints, excRates, inhRates, counts)
	if err != nil {
		return err
	}
	if mpi.WorldRank() > 0 {
		return nil
	}
	return WriteTable(w, dt)
}

// ScheduleSeed returns the seed for shuffling the intensity schedule:
// one below the smallest run seed, so it never matches the noise seed
// of any run.
func ScheduleSeed(seeds randx.Seeds) int64 {
	return slices.Min(seeds) - 1
}
