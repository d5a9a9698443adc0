// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Time contains the timing state of a running neuron
type Time struct {

	// accumulated amount of simulated time the neuron has been running,
	// in the same units as the time constants (msec typically).
	// Spike times are recorded on this clock.
	Time float64

	// step counter: number of Timestep calls since the last Reset.
	Step int

	// size of the most recent time step
	Dt float64
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	tm.Dt = 0
}

// StepInc increments the clock by one step of size dt
func (tm *Time) StepInc(dt float64) {
	tm.Dt = dt
	tm.Step++
	tm.Time += dt
}
