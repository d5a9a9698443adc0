// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron provides a single-compartment conductance-based point
neuron, driven by shot-noise synaptic conductances (package chans) and
spiking through multi-timescale adaptive thresholds (package mat).

The membrane potential is never reset: each threshold unit independently
decides whether the current voltage trace crosses its own adapting
threshold, so one Neuron yields one spike train per threshold unit.

The Neuron owns its conductances and threshold units by value.  Callers
refer to conductances through the Cond handle returned by AddConductance,
and to thresholds by index in construction order.
*/
package neuron

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/lab/base/randx"
	"github.com/emer/matneuron"
	"github.com/emer/matneuron/chans"
	"github.com/emer/matneuron/mat"
)

// Cond is a handle to a conductance owned by a Neuron
type Cond int

// Neuron is a conductance-based point neuron with MAT spiking.
// It is not safe for concurrent use: use Clone to run independent trials.
type Neuron struct {

	// resting (leak reversal) potential
	Erest float64 `def:"-80"`

	// membrane resistance
	R float64 `min:"0" def:"50"`

	// membrane capacitance
	C float64 `min:"0" def:"0.1"`

	// membrane time constant = R * C
	Tau float64 `edit:"-"`

	// membrane potential
	Vm float64 `edit:"-"`

	// simulated time and step counters
	Time Time `edit:"-"`

	// synaptic conductances, summed into the membrane equation
	Conds []chans.ShotNoise

	// threshold units, each evaluated against the same Vm
	Thrs []mat.Threshold

	// range of Vm values since the last Init
	VmRange minmax.F64 `edit:"-"`

	// seed of the random source used for conductance events
	Seed int64

	// random source for conductance events
	Rand randx.SysRand `display:"-"`
}

// New returns a Neuron at rest with the given threshold units (copied).
// Resistance and capacitance must be > 0.
func New(erest, r, c float64, thrs ...mat.Threshold) (*Neuron, error) {
	nrn := &Neuron{Erest: erest, R: r, C: c}
	if err := nrn.Validate(); err != nil {
		return nil, err
	}
	nrn.Thrs = make([]mat.Threshold, len(thrs))
	for i := range thrs {
		if err := thrs[i].Validate(); err != nil {
			return nil, err
		}
		nrn.Thrs[i] = thrs[i].Clone()
	}
	nrn.Update()
	nrn.SetRandSeed(1)
	nrn.Vm = nrn.Erest
	nrn.InitVmRange()
	return nrn, nil
}

// Validate returns an error if the membrane parameters are not usable.
func (nrn *Neuron) Validate() error {
	switch {
	case !(nrn.R > 0) || math.IsInf(nrn.R, 1):
		return fmt.Errorf("%w: membrane resistance must be > 0, got %g", matneuron.ErrInvalidParam, nrn.R)
	case !(nrn.C > 0) || math.IsInf(nrn.C, 1):
		return fmt.Errorf("%w: membrane capacitance must be > 0, got %g", matneuron.ErrInvalidParam, nrn.C)
	case math.IsNaN(nrn.Erest) || math.IsInf(nrn.Erest, 0):
		return fmt.Errorf("%w: resting potential must be finite, got %g", matneuron.ErrInvalidParam, nrn.Erest)
	}
	return nil
}

// Update must be called after any changes to parameters
func (nrn *Neuron) Update() {
	nrn.Tau = nrn.R * nrn.C
}

// SetRandSeed reseeds the random source used for conductance events.
func (nrn *Neuron) SetRandSeed(seed int64) {
	nrn.Seed = seed
	nrn.Rand.NewRand(seed)
}

// AddConductance appends a conductance to the neuron and returns
// its handle.
func (nrn *Neuron) AddConductance(c chans.ShotNoise) Cond {
	nrn.Conds = append(nrn.Conds, c)
	return Cond(len(nrn.Conds) - 1)
}

// Cond returns the conductance for handle h
func (nrn *Neuron) Cond(h Cond) *chans.ShotNoise {
	return &nrn.Conds[h]
}

// Thr returns the threshold unit at index i
func (nrn *Neuron) Thr(i int) *mat.Threshold {
	return &nrn.Thrs[i]
}

// Init restores the neuron to rest: Vm = Erest, clock at 0, all
// conductances at 0 and all thresholds in their initial state.
// The random source is not reseeded.
func (nrn *Neuron) Init() {
	nrn.Update()
	nrn.Vm = nrn.Erest
	nrn.Time.Reset()
	for i := range nrn.Conds {
		nrn.Conds[i].Init()
	}
	for i := range nrn.Thrs {
		nrn.Thrs[i].Init()
	}
	nrn.InitVmRange()
}

// InitVmRange restarts VmRange tracking from the current Vm
func (nrn *Neuron) InitVmRange() {
	nrn.VmRange.SetInfinity()
	nrn.VmRange.FitValInRange(nrn.Vm)
}

// InitTime resets only the clock, keeping all dynamic state.
func (nrn *Neuron) InitTime() {
	nrn.Time.Reset()
}

// ValidateDt returns an error unless dt is a finite value > 0.
func ValidateDt(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: time step dt must be > 0, got %g", matneuron.ErrInvalidParam, dt)
	}
	return nil
}

// Timestep advances the neuron by dt.  The order is fixed, as each
// stage reads the state written by the previous one:
// clock, conductances, Vm, then each threshold Update followed by
// Fire if the updated Thr <= Vm.
// An invalid dt returns an error without changing any state.
func (nrn *Neuron) Timestep(dt float64) error {
	if err := ValidateDt(dt); err != nil {
		return err
	}
	nrn.Time.StepInc(dt)
	for i := range nrn.Conds {
		nrn.Conds[i].Update(dt, &nrn.Rand)
	}
	nrn.IntegrateVm(dt)
	for i := range nrn.Thrs {
		th := &nrn.Thrs[i]
		th.Update(dt)
		if th.Thr <= nrn.Vm {
			th.Fire(nrn.Time.Time)
		}
	}
	return nil
}

// IntegrateVm updates Vm by a semi-implicit (backward) Euler step of
//
//	Tau dVm/dt = (Erest - Vm) + R * sum_i G_i (Erev_i - Vm)
//
// using the current conductances.  It stays stable for large total
// conductance and coarse dt.  dt must be > 0.
func (nrn *Neuron) IntegrateVm(dt float64) {
	g, gr := chans.Totals(nrn.Conds)
	factor := 1/dt + (1+nrn.R*g)/nrn.Tau
	nrn.Vm = (nrn.Vm/dt + (nrn.Erest+nrn.R*gr)/nrn.Tau) / factor
	nrn.VmRange.FitValInRange(nrn.Vm)
}

// RunFor calls Timestep while the time accumulated from the start of
// this call is <= total, so the last step can overshoot total.
func (nrn *Neuron) RunFor(total, dt float64) error {
	if err := ValidateDt(dt); err != nil {
		return err
	}
	for simTime := 0.0; simTime <= total; simTime += dt {
		if err := nrn.Timestep(dt); err != nil {
			return err
		}
	}
	return nil
}

// SpikeCounts returns the number of recorded spikes per threshold unit
func (nrn *Neuron) SpikeCounts() []int {
	cnts := make([]int, len(nrn.Thrs))
	for i := range nrn.Thrs {
		cnts[i] = nrn.Thrs[i].NSpikes()
	}
	return cnts
}

// ResetSpikeTimes clears the spike record of every threshold unit
func (nrn *Neuron) ResetSpikeTimes() {
	for i := range nrn.Thrs {
		nrn.Thrs[i].ResetSpikeTimes()
	}
}

// ThrNames returns the names of the threshold units, in order
func (nrn *Neuron) ThrNames() []string {
	nms := make([]string, len(nrn.Thrs))
	for i := range nrn.Thrs {
		nms[i] = nrn.Thrs[i].Name
	}
	return nms
}

// Clone returns a deep copy of the neuron with its own random source,
// seeded with the same Seed.  Nothing is shared with the original.
func (nrn *Neuron) Clone() *Neuron {
	cp := &Neuron{}
	*cp = *nrn
	cp.Rand = randx.SysRand{}
	cp.SetRandSeed(nrn.Seed)
	cp.Conds = make([]chans.ShotNoise, len(nrn.Conds))
	copy(cp.Conds, nrn.Conds)
	cp.Thrs = make([]mat.Threshold, len(nrn.Thrs))
	for i := range nrn.Thrs {
		cp.Thrs[i] = nrn.Thrs[i].Clone()
	}
	return cp
}
