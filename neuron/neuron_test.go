// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/emer/matneuron"
	"github.com/emer/matneuron/chans"
	"github.com/emer/matneuron/mat"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-10

func testNeuron(t *testing.T, rate float64) (*Neuron, Cond) {
	th, err := mat.New("test", 10, 1, 10, 200, -60, 2)
	if err != nil {
		t.Fatal(err)
	}
	nrn, err := New(-80, 50, 0.1, th)
	if err != nil {
		t.Fatal(err)
	}
	exc, err := chans.NewShotNoise(rate, 0.0015, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	return nrn, nrn.AddConductance(exc)
}

func TestNewAtRest(t *testing.T) {
	nrn, _ := testNeuron(t, 0)
	if nrn.Vm != -80 {
		t.Errorf("Vm: %v, want -80", nrn.Vm)
	}
	if nrn.Time.Time != 0 || nrn.Time.Step != 0 {
		t.Errorf("clock not at zero: %+v", nrn.Time)
	}
	if math.Abs(nrn.Tau-5) > difTol {
		t.Errorf("Tau: %v, want 5", nrn.Tau)
	}
	if nrn.Thr(0).Thr != -60 {
		t.Errorf("initial Thr: %v, want -60", nrn.Thr(0).Thr)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(-80, 0, 0.1); !errors.Is(err, matneuron.ErrInvalidParam) {
		t.Errorf("R = 0: expected ErrInvalidParam, got: %v", err)
	}
	if _, err := New(-80, 50, -0.1); !errors.Is(err, matneuron.ErrInvalidParam) {
		t.Errorf("C < 0: expected ErrInvalidParam, got: %v", err)
	}
	bad := mat.Threshold{Name: "bad", Tau1: 0, Tau2: 200}
	if _, err := New(-80, 50, 0.1, bad); !errors.Is(err, matneuron.ErrInvalidParam) {
		t.Errorf("bad threshold: expected ErrInvalidParam, got: %v", err)
	}
}

func TestTimestepZeroConductance(t *testing.T) {
	nrn, _ := testNeuron(t, 0)
	if err := nrn.Timestep(0.1); err != nil {
		t.Fatal(err)
	}
	if math.Abs(nrn.Vm-(-80)) > difTol {
		t.Errorf("Vm: %v, want -80", nrn.Vm)
	}
	if math.Abs(nrn.Time.Time-0.1) > difTol || nrn.Time.Step != 1 {
		t.Errorf("clock: %+v", nrn.Time)
	}
	if nrn.Thr(0).NSpikes() != 0 {
		t.Errorf("spiked on step 1 with Thr: %v > Vm: %v", nrn.Thr(0).Thr, nrn.Vm)
	}
}

func TestTimestepInvalidDt(t *testing.T) {
	nrn, exc := testNeuron(t, 1000)
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		err := nrn.Timestep(dt)
		if !errors.Is(err, matneuron.ErrInvalidParam) {
			t.Errorf("dt: %v, expected ErrInvalidParam, got: %v", dt, err)
		}
	}
	if nrn.Vm != -80 || nrn.Time.Time != 0 || nrn.Time.Step != 0 || nrn.Cond(exc).G != 0 {
		t.Errorf("invalid dt mutated state: %v G: %v", nrn.String(), nrn.Cond(exc).G)
	}
	if err := nrn.RunFor(10, 0); !errors.Is(err, matneuron.ErrInvalidParam) {
		t.Errorf("RunFor dt 0: expected ErrInvalidParam, got: %v", err)
	}
}

// TestIntegrateVm checks the semi-implicit step against the formula
// computed by hand for fixed conductances.
func TestIntegrateVm(t *testing.T) {
	nrn, _ := New(-80, 50, 0.1)
	nrn.AddConductance(chans.ShotNoise{G: 0.01, Erev: 0, Tau: 3})
	nrn.AddConductance(chans.ShotNoise{G: 0.004, Erev: -75, Tau: 10})
	dts := []float64{0.1, 0.05, 1}
	vm := -80.0
	for _, dt := range dts {
		g := 0.014
		gr := 0.004 * -75
		factor := 1/dt + (1+50*g)/5
		vm = (vm/dt + (-80+50*gr)/5) / factor
		nrn.IntegrateVm(dt)
		if math.Abs(nrn.Vm-vm) > difTol {
			t.Errorf("dt: %v, Vm: %v, want: %v", dt, nrn.Vm, vm)
		}
	}
	// equilibrium: (Erest + R*GR) / (1 + R*G)
	eq := (-80 + 50*0.004*-75) / (1 + 50*0.014)
	for i := 0; i < 10000; i++ {
		nrn.IntegrateVm(0.1)
	}
	if math.Abs(nrn.Vm-eq) > 1e-6 {
		t.Errorf("equilibrium Vm: %v, want: %v", nrn.Vm, eq)
	}
}

func TestHighRateSpikes(t *testing.T) {
	nrn, exc := testNeuron(t, 1000)
	prev := nrn.Vm
	rose := false
	for i := 0; i < 500; i++ {
		if err := nrn.Timestep(0.1); err != nil {
			t.Fatal(err)
		}
		if nrn.Vm > prev {
			rose = true
		}
		if nrn.Vm > 0+difTol {
			t.Fatalf("Vm: %v above excitatory reversal potential", nrn.Vm)
		}
	}
	if !rose || nrn.Vm <= -60 {
		t.Errorf("Vm did not rise toward reversal: %v (G: %v)", nrn.Vm, nrn.Cond(exc).G)
	}
	th := nrn.Thr(0)
	if th.NSpikes() == 0 {
		t.Fatalf("no spikes: %v", th.String())
	}
	st := th.SpikeTimes()
	for i := 1; i < len(st); i++ {
		if st[i]-st[i-1] < th.Refract-difTol {
			t.Errorf("spikes %d, %d closer than refractory period: %v %v", i-1, i, st[i-1], st[i])
		}
	}
	if nrn.VmRange.Min > -80+difTol || nrn.VmRange.Max < nrn.Vm {
		t.Errorf("VmRange: %v", nrn.VmRange)
	}
}

func TestRunForOvershoot(t *testing.T) {
	nrn, _ := testNeuron(t, 0)
	if err := nrn.RunFor(1, 0.1); err != nil {
		t.Fatal(err)
	}
	// loop runs while accumulated time <= total: with float accumulation
	// of 0.1 this is 11 steps (0, 0.1, ... 0.99999)
	if nrn.Time.Step != 11 {
		t.Errorf("steps: %d, want 11", nrn.Time.Step)
	}
	if nrn.Time.Time <= 1 {
		t.Errorf("time: %v should overshoot 1", nrn.Time.Time)
	}
}

func TestSeedReproducible(t *testing.T) {
	a, _ := testNeuron(t, 3)
	b, _ := testNeuron(t, 3)
	a.SetRandSeed(17)
	b.SetRandSeed(17)
	a.RunFor(200, 0.1)
	b.RunFor(200, 0.1)
	if a.Vm != b.Vm || a.Thr(0).NSpikes() != b.Thr(0).NSpikes() {
		t.Errorf("same seed diverged: %v vs %v", a.String(), b.String())
	}
}

func TestCloneIndependent(t *testing.T) {
	nrn, exc := testNeuron(t, 1000)
	nrn.SetRandSeed(5)
	cp := nrn.Clone()
	cp.Cond(exc).SetRate(0)
	cp.RunFor(50, 0.1)
	if nrn.Time.Step != 0 || nrn.Vm != -80 || nrn.Cond(exc).Rate != 1000 {
		t.Errorf("clone shares state with original: %v", nrn.String())
	}
	nrn.RunFor(50, 0.1)
	if nrn.Thr(0).NSpikes() == 0 || cp.Thr(0).NSpikes() != 0 {
		t.Errorf("spikes: orig %d clone %d", nrn.Thr(0).NSpikes(), cp.Thr(0).NSpikes())
	}
}

func TestInit(t *testing.T) {
	nrn, exc := testNeuron(t, 1000)
	nrn.RunFor(100, 0.1)
	nrn.Init()
	if nrn.Vm != -80 || nrn.Time.Time != 0 || nrn.Cond(exc).G != 0 {
		t.Errorf("Init: %v G: %v", nrn.String(), nrn.Cond(exc).G)
	}
	th := nrn.Thr(0)
	if th.NSpikes() != 0 || th.Thr != th.Omega || !th.Ready() {
		t.Errorf("Init threshold: %v", th.String())
	}
}

func TestSpikeCountsReset(t *testing.T) {
	nrn, _ := testNeuron(t, 1000)
	nrn.RunFor(100, 0.1)
	cnts := nrn.SpikeCounts()
	if len(cnts) != 1 || cnts[0] == 0 {
		t.Fatalf("counts: %v", cnts)
	}
	nrn.ResetSpikeTimes()
	if nrn.SpikeCounts()[0] != 0 {
		t.Errorf("counts after reset: %v", nrn.SpikeCounts())
	}
	rep := nrn.SizeReport()
	if !strings.Contains(rep, "test") || !strings.Contains(rep, "Neuron") {
		t.Errorf("size report: %s", rep)
	}
}

func TestVmRange(t *testing.T) {
	nrn, _ := testNeuron(t, 1000)
	if nrn.VmRange.Min != -80 || nrn.VmRange.Max != -80 {
		t.Errorf("initial VmRange: [%v, %v], want [-80, -80]", nrn.VmRange.Min, nrn.VmRange.Max)
	}
	nrn.RunFor(50, 0.1)
	if nrn.VmRange.Min != -80 || nrn.VmRange.Max < nrn.Vm || nrn.VmRange.Max <= -80 {
		t.Errorf("VmRange after run: [%v, %v], Vm: %v", nrn.VmRange.Min, nrn.VmRange.Max, nrn.Vm)
	}
	nrn.Init()
	if nrn.VmRange.Min != -80 || nrn.VmRange.Max != -80 {
		t.Errorf("VmRange after Init: [%v, %v], want [-80, -80]", nrn.VmRange.Min, nrn.VmRange.Max)
	}
}
