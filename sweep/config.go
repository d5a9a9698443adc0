// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// NeuronConfig has the membrane and threshold parameters of the neuron.
type NeuronConfig struct {

	// Erest is the resting (leak reversal) potential.
	Erest float64 `default:"-80"`

	// R is the membrane resistance.
	R float64 `default:"50" min:"0"`

	// C is the membrane capacitance.
	C float64 `default:"0.1" min:"0"`

	// Cells lists the preset threshold units driven by the same
	// membrane, one spike train each.
	Cells []string `default:"['RS', 'IB', 'FS', 'CH']"`
}

// InputConfig has the shot-noise input parameters and the intensity schedule.
type InputConfig struct {

	// ExcRate is the excitatory event rate per step at intensity 1.
	ExcRate float64 `default:"2.67"`

	// ExcGPeak is the conductance increment per excitatory event.
	ExcGPeak float64 `default:"0.0015"`

	// ExcErev is the excitatory reversal potential.
	ExcErev float64 `default:"0"`

	// ExcTau is the excitatory decay time constant.
	ExcTau float64 `default:"3"`

	// InhRate is the inhibitory event rate per step at intensity 1.
	InhRate float64 `default:"3.73"`

	// InhGPeak is the conductance increment per inhibitory event.
	InhGPeak float64 `default:"0.0015"`

	// InhErev is the inhibitory reversal potential.
	InhErev float64 `default:"-75"`

	// InhTau is the inhibitory decay time constant.
	InhTau float64 `default:"10"`

	// Balance scales inhibition with intensity: 0 keeps it fixed,
	// 1 scales it like excitation.
	Balance float64 `default:"0" min:"0" max:"1"`

	// LogLo is the log10 of the lowest intensity.
	LogLo float64 `default:"0"`

	// LogHi is the log10 of the highest intensity.
	LogHi float64 `default:"1.6"`

	// NIntensities is the number of log-spaced intensities.
	NIntensities int `default:"100" min:"1"`

	// Repeats is how many times each intensity is presented,
	// in shuffled order.
	Repeats int `default:"2" min:"1"`
}

// RunConfig has config parameters related to running the sweep.
type RunConfig struct {

	// Dt is the integration time step.
	Dt float64 `default:"0.1" min:"0"`

	// Window is the time each intensity is presented for.
	Window float64 `default:"1000"`

	// Runs is the number of independently seeded runs whose
	// counts are summed.
	Runs int `default:"4" min:"1"`

	// Seed is the seed of the first run, with the rest counting up
	// from it.  0 uses time-based seeds.
	Seed int64 `default:"0"`
}

// Config has the overall configuration of the sweep.
type Config struct {

	// Name is the short name of the program.
	Name string `display:"-" default:"MATNeuron"`

	// Title is the longer title of the program.
	Title string `display:"-" default:"MAT neuron intensity sweep"`

	// Doc is brief documentation of the program.
	Doc string `display:"-" default:"Drives a conductance-based neuron with shot-noise input over a range of stimulus intensities and counts the spikes of each MAT threshold unit."`

	// Note is additional info to describe the run.
	Note string

	// Verbose reports run notes and the neuron size report
	// ahead of the table.
	Verbose bool

	// Neuron has the neuron configuration options.
	Neuron NeuronConfig `display:"add-fields"`

	// Input has the input configuration options.
	Input InputConfig `display:"add-fields"`

	// Run has the running configuration options.
	Run RunConfig `display:"add-fields"`
}

func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
}

func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}
