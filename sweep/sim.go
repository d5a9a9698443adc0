// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sweep drives a neuron.Neuron through input-rate experiments:
it sets the excitatory and inhibitory shot-noise rates, runs the neuron
for a fixed time window, and collects spike counts per threshold unit.

Time loops here accumulate dt and continue while the accumulated time is
<= the requested duration, so a run takes one step more than
duration / dt whenever floating-point accumulation falls just short.
This is kept as-is so spike counts match earlier results.
*/
package sweep

import (
	"fmt"

	"cogentcore.org/lab/base/mpi"
	"github.com/emer/matneuron"
	"github.com/emer/matneuron/chans"
	"github.com/emer/matneuron/neuron"
)

// Sim holds a neuron with its excitatory and inhibitory input
// conductances, addressed by role rather than by position.
type Sim struct {

	// the neuron being driven
	Neuron *neuron.Neuron

	// handle of the excitatory input conductance
	Exc neuron.Cond

	// handle of the inhibitory input conductance
	Inh neuron.Cond

	// print progress every 1% of an Experiment
	Verbose bool
}

// New attaches exc and inh to nrn and returns a Sim driving it.
func New(nrn *neuron.Neuron, exc, inh chans.ShotNoise) *Sim {
	ss := &Sim{Neuron: nrn}
	ss.Exc = nrn.AddConductance(exc)
	ss.Inh = nrn.AddConductance(inh)
	return ss
}

// Clone returns an independent copy of the Sim, with a cloned Neuron.
func (ss *Sim) Clone() *Sim {
	cp := *ss
	cp.Neuron = ss.Neuron.Clone()
	return &cp
}

// SetRates sets the excitatory and inhibitory event rates
func (ss *Sim) SetRates(excRate, inhRate float64) {
	ss.Neuron.Cond(ss.Exc).SetRate(excRate)
	ss.Neuron.Cond(ss.Inh).SetRate(inhRate)
}

// Run sets the input rates and steps the neuron while the time
// accumulated in this call is <= total.
func (ss *Sim) Run(total, dt, excRate, inhRate float64) error {
	if err := neuron.ValidateDt(dt); err != nil {
		return err
	}
	ss.SetRates(excRate, inhRate)
	return ss.Neuron.RunFor(total, dt)
}

// Experiment runs one window per index of excRates / inhRates, which
// must have the same length.  Each window sets both rates, runs for
// window time, appends the spike count of every threshold unit, and
// clears the spike records.  Neuron state otherwise carries over from
// one window to the next.  Counts are ordered by index, then by
// threshold unit.
func (ss *Sim) Experiment(window, dt float64, excRates, inhRates []float64) ([]int, error) {
	if len(excRates) != len(inhRates) {
		return nil, fmt.Errorf("%w: %d excitatory rates vs. %d inhibitory rates", matneuron.ErrInvalidParam, len(excRates), len(inhRates))
	}
	if err := neuron.ValidateDt(dt); err != nil {
		return nil, err
	}
	n := len(excRates)
	nthr := len(ss.Neuron.Thrs)
	counts := make([]int, 0, n*nthr)
	printStep := max(n/100, 1)
	for i := range n {
		if ss.Verbose && i%printStep == 0 {
			mpi.Printf("%d / %d\n", i, n)
		}
		if err := ss.Run(window, dt, excRates[i], inhRates[i]); err != nil {
			return counts, err
		}
		counts = append(counts, ss.Neuron.SpikeCounts()...)
		ss.Neuron.ResetSpikeTimes()
	}
	return counts, nil
}

// SpikeTrains restarts the clock, clears the spike records, and runs
// at constant rates for total time.  It returns the spike times of each
// threshold unit keyed by name, and leaves the records cleared.
// Units must have distinct names.
func (ss *Sim) SpikeTrains(total, dt, excRate, inhRate float64) (map[string][]float64, error) {
	nrn := ss.Neuron
	nrn.InitTime()
	nrn.ResetSpikeTimes()
	if err := ss.Run(total, dt, excRate, inhRate); err != nil {
		return nil, err
	}
	trains := make(map[string][]float64, len(nrn.Thrs))
	for i := range nrn.Thrs {
		th := nrn.Thr(i)
		if _, has := trains[th.Name]; has {
			return nil, fmt.Errorf("%w: duplicate threshold name %q", matneuron.ErrInvalidParam, th.Name)
		}
		trains[th.Name] = th.SpikeTimes()
	}
	nrn.ResetSpikeTimes()
	return trains, nil
}

// WindowCounts counts the spikes falling in consecutive windows
// [t, t+window), starting at t = offset, for as long as t+window <= total.
func WindowCounts(spikes []float64, window, total, offset float64) []int {
	if !(window > 0) {
		return nil
	}
	var counts []int
	for t := offset; t+window <= total; t += window {
		n := 0
		for _, s := range spikes {
			if s >= t && s < t+window {
				n++
			}
		}
		counts = append(counts, n)
	}
	return counts
}
