// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mat provides the multi-timescale adaptive threshold (MAT)
spiking mechanism (Kobayashi, Tsubo & Shinomoto, 2009).

Instead of resetting the membrane potential after a spike, each spike
raises the firing threshold by Alpha1 and Alpha2, and these two
components relax back toward the baseline Omega with time constants
Tau1 (fast) and Tau2 (slow).  A neuron can carry several threshold
units evaluated against the same voltage trace, each producing its own
spike train.

A Threshold is either READY (ISI >= Refract, Fire registers a spike) or
REFRACTORY (ISI < Refract, Fire is a no-op).  It starts READY.
*/
package mat

import (
	"fmt"
	"math"
	"slices"

	"github.com/emer/matneuron"
)

// Threshold is one MAT threshold unit, with its tuning constants,
// adaptation state, and the record of spike times.
type Threshold struct {

	// name of the cell type this unit models, used to label results
	Name string

	// threshold increment of the fast component on each spike
	Alpha1 float64

	// threshold increment of the slow component on each spike
	Alpha2 float64

	// decay time constant of the fast component
	Tau1 float64 `min:"0" def:"10"`

	// decay time constant of the slow component
	Tau2 float64 `min:"0" def:"200"`

	// baseline (resting) threshold
	Omega float64

	// minimum time between registered spikes
	Refract float64 `min:"0" def:"2"`

	// fast adaptation component, decays toward 0
	T1 float64 `edit:"-"`

	// slow adaptation component, decays toward 0
	T2 float64 `edit:"-"`

	// current threshold = T1 + T2 + Omega, recomputed by Update
	Thr float64 `edit:"-"`

	// time since the last registered spike
	ISI float64 `edit:"-"`

	// recorded spike times, in order
	Spikes []float64 `edit:"-"`
}

// New returns a READY threshold unit with the given tuning constants.
// Tau1 and Tau2 must be > 0 and refract >= 0.
func New(name string, alpha1, alpha2, tau1, tau2, omega, refract float64) (Threshold, error) {
	th := Threshold{Name: name, Alpha1: alpha1, Alpha2: alpha2, Tau1: tau1, Tau2: tau2, Omega: omega, Refract: refract}
	if err := th.Validate(); err != nil {
		return Threshold{}, err
	}
	th.Init()
	return th, nil
}

// Validate returns an error for time constants that would
// make the decay factors blow up.
func (th *Threshold) Validate() error {
	switch {
	case !(th.Tau1 > 0):
		return fmt.Errorf("%w: threshold %q Tau1 must be > 0, got %g", matneuron.ErrInvalidParam, th.Name, th.Tau1)
	case !(th.Tau2 > 0):
		return fmt.Errorf("%w: threshold %q Tau2 must be > 0, got %g", matneuron.ErrInvalidParam, th.Name, th.Tau2)
	case !(th.Refract >= 0):
		return fmt.Errorf("%w: threshold %q Refract must be >= 0, got %g", matneuron.ErrInvalidParam, th.Name, th.Refract)
	case math.IsNaN(th.Omega) || math.IsInf(th.Omega, 0):
		return fmt.Errorf("%w: threshold %q Omega must be finite, got %g", matneuron.ErrInvalidParam, th.Name, th.Omega)
	}
	return nil
}

// Init restores the initial state: no adaptation, READY, empty record.
func (th *Threshold) Init() {
	th.T1 = 0
	th.T2 = 0
	th.Thr = th.Omega
	th.ISI = th.Refract
	th.Spikes = nil
}

// Update advances the refractory timer by dt, decays both adaptation
// components and recomputes Thr.
func (th *Threshold) Update(dt float64) {
	th.ISI += dt
	th.T1 *= math.Exp(-dt / th.Tau1)
	th.T2 *= math.Exp(-dt / th.Tau2)
	th.Thr = th.T1 + th.T2 + th.Omega
}

// Ready returns true if the refractory period has elapsed.
func (th *Threshold) Ready() bool {
	return th.ISI >= th.Refract
}

// Fire registers a spike at time t if the unit is Ready, adding Alpha1
// and Alpha2 to the adaptation components and restarting the refractory
// timer.  During the refractory period it does nothing.
// Returns true if a spike was registered.
//
// Thr is not recomputed until the next Update.
func (th *Threshold) Fire(t float64) bool {
	if !th.Ready() {
		return false
	}
	th.T1 += th.Alpha1
	th.T2 += th.Alpha2
	th.Spikes = append(th.Spikes, t)
	th.ISI = 0
	return true
}

// SpikeTimes returns a copy of the recorded spike times.
func (th *Threshold) SpikeTimes() []float64 {
	return slices.Clone(th.Spikes)
}

// NSpikes returns the number of recorded spikes
func (th *Threshold) NSpikes() int {
	return len(th.Spikes)
}

// ResetSpikeTimes clears the spike record, leaving the adaptation
// state and refractory timer untouched.
func (th *Threshold) ResetSpikeTimes() {
	th.Spikes = nil
}

// Clone returns a copy that does not share the spike record.
func (th *Threshold) Clone() Threshold {
	cp := *th
	cp.Spikes = slices.Clone(th.Spikes)
	return cp
}

func (th *Threshold) String() string {
	return fmt.Sprintf("%s: Thr: %g\tT1: %g\tT2: %g\tISI: %g\tSpikes: %d", th.Name, th.Thr, th.T1, th.T2, th.ISI, len(th.Spikes))
}
