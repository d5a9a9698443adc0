// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package matneuron is the overall repository for a single-compartment
conductance-based neuron driven by shot-noise synaptic input, which spikes
according to multi-timescale adaptive thresholds (MAT) instead of a
voltage reset.

This top-level of the repository only holds shared error values --
everything else is organized into the following sub-packages:

* poisson: the inverse-CDF Poisson event sampler shared by all conductances.

* chans: shot-noise synaptic conductances -- Poisson event counts per step
each add a fixed increment, and the conductance decays exponentially.

* mat: multi-timescale adaptive threshold units, with two exponentially
decaying adaptation components, a refractory period, and the spike record.
Includes the standard RS, IB, FS and CH cell type presets.

* neuron: the point neuron, which owns its conductances and thresholds and
integrates membrane potential with a semi-implicit Euler step.

* sweep: the experiment driver that sweeps excitatory / inhibitory input
rates and counts spikes per threshold unit, including parallel seeded runs.

* cmd/matneuron: command-line program running the standard noise scan.
*/
package matneuron
