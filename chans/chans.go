// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides synaptic conductance channels for computing
a conductance-based point-neuron membrane potential.

ShotNoise is a synaptic conductance driven by discrete Poisson events:
every event adds a fixed increment GPeak, and the conductance decays
exponentially with time constant Tau between events.
*/
package chans

import (
	"fmt"
	"math"

	"cogentcore.org/lab/base/randx"
	"github.com/emer/matneuron"
	"github.com/emer/matneuron/poisson"
)

// ShotNoise is a shot-noise synaptic conductance.
// Rate is the expected number of events per call to Update, i.e., per
// time step, not per unit time: Rate and dt must be chosen together.
type ShotNoise struct {

	// expected number of synaptic events per Update step
	Rate float64 `min:"0"`

	// conductance increment added per event
	GPeak float64 `min:"0"`

	// reversal potential toward which this conductance drives the membrane
	Erev float64

	// decay time constant of the conductance
	Tau float64 `min:"0"`

	// current conductance, always >= 0
	G float64 `edit:"-"`
}

// NewShotNoise returns a shot-noise conductance with zero initial conductance.
// Tau must be > 0, and rate and gPeak must be >= 0.
func NewShotNoise(rate, gPeak, erev, tau float64) (ShotNoise, error) {
	sn := ShotNoise{Rate: rate, GPeak: gPeak, Erev: erev, Tau: tau}
	if err := sn.Validate(); err != nil {
		return ShotNoise{}, err
	}
	return sn, nil
}

// Validate returns an error if the parameters cannot produce a
// non-negative, finite conductance.
func (sn *ShotNoise) Validate() error {
	switch {
	case !(sn.Tau > 0) || math.IsInf(sn.Tau, 1):
		return fmt.Errorf("%w: conductance decay Tau must be > 0, got %g", matneuron.ErrInvalidParam, sn.Tau)
	case !(sn.Rate >= 0) || math.IsInf(sn.Rate, 1):
		return fmt.Errorf("%w: conductance Rate must be >= 0, got %g", matneuron.ErrInvalidParam, sn.Rate)
	case !(sn.GPeak >= 0) || math.IsInf(sn.GPeak, 1):
		return fmt.Errorf("%w: conductance GPeak must be >= 0, got %g", matneuron.ErrInvalidParam, sn.GPeak)
	case math.IsNaN(sn.Erev) || math.IsInf(sn.Erev, 0):
		return fmt.Errorf("%w: conductance Erev must be finite, got %g", matneuron.ErrInvalidParam, sn.Erev)
	}
	return nil
}

// Init resets the conductance state to 0
func (sn *ShotNoise) Init() {
	sn.G = 0
}

// SetRate sets the event rate used from the next Update on.
func (sn *ShotNoise) SetRate(rate float64) {
	sn.Rate = rate
}

// Update draws a Poisson event count at Rate from rnd, adds
// count * GPeak to G, and then decays G by exp(-dt / Tau).
func (sn *ShotNoise) Update(dt float64, rnd randx.Rand) {
	n := poisson.Sample(sn.Rate, rnd)
	sn.G += float64(n) * sn.GPeak
	sn.G *= math.Exp(-dt / sn.Tau)
}

// GErev returns the reversal-weighted conductance G * Erev
func (sn *ShotNoise) GErev() float64 {
	return sn.G * sn.Erev
}

// Totals returns the summed conductance and summed reversal-weighted
// conductance over all channels.
func Totals(cs []ShotNoise) (g, gErev float64) {
	for i := range cs {
		c := &cs[i]
		g += c.G
		gErev += c.GErev()
	}
	return
}
