// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"errors"
	"math"
	"testing"

	"cogentcore.org/lab/base/randx"
	"github.com/emer/matneuron"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestNewShotNoiseInvalid(t *testing.T) {
	bad := [][4]float64{
		{1, 0.0015, 0, 0},
		{1, 0.0015, 0, -3},
		{1, 0.0015, 0, math.NaN()},
		{-1, 0.0015, 0, 3},
		{1, -0.0015, 0, 3},
		{1, 0.0015, math.Inf(-1), 3},
	}
	for i, p := range bad {
		_, err := NewShotNoise(p[0], p[1], p[2], p[3])
		if !errors.Is(err, matneuron.ErrInvalidParam) {
			t.Errorf("idx: %d params: %v, expected ErrInvalidParam, got: %v", i, p, err)
		}
	}
	sn, err := NewShotNoise(2.67, 0.0015, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if sn.G != 0 {
		t.Errorf("initial G: %v, want 0", sn.G)
	}
}

func TestShotNoiseNonNegative(t *testing.T) {
	rnd := randx.NewSysRand(11)
	sn, _ := NewShotNoise(5, 0.0015, -75, 10)
	for i := 0; i < 20000; i++ {
		if i%1000 == 0 {
			sn.SetRate(float64(i%7) * 1.5)
		}
		sn.Update(0.1, rnd)
		if sn.G < 0 {
			t.Fatalf("step %d: negative G: %v", i, sn.G)
		}
	}
}

func TestShotNoiseZeroRateDecay(t *testing.T) {
	rnd := randx.NewSysRand(1)
	sn, _ := NewShotNoise(0, 0.0015, 0, 3)
	sn.G = 0.2
	prev := sn.G
	dt := 0.1
	decay := math.Exp(-dt / sn.Tau)
	for i := 0; i < 500; i++ {
		sn.Update(dt, rnd)
		if sn.G >= prev {
			t.Fatalf("step %d: G did not decay: %v >= %v", i, sn.G, prev)
		}
		if dif := math.Abs(sn.G - prev*decay); dif > difTol {
			t.Errorf("step %d: G: %v, want: %v", i, sn.G, prev*decay)
		}
		prev = sn.G
	}
}

func TestShotNoiseIncrements(t *testing.T) {
	// with zero decay over the step (dt = 0), G is an integer
	// multiple of GPeak
	rnd := randx.NewSysRand(5)
	sn, _ := NewShotNoise(3, 0.5, 0, 3)
	for i := 0; i < 100; i++ {
		sn.Update(0, rnd)
		n := sn.G / sn.GPeak
		if math.Abs(n-math.Round(n)) > 1e-9 {
			t.Fatalf("G: %v is not a multiple of GPeak", sn.G)
		}
	}
	if sn.G == 0 {
		t.Errorf("no events after 100 steps at rate 3")
	}
}

func TestSetRate(t *testing.T) {
	rnd := randx.NewSysRand(2)
	sn, _ := NewShotNoise(0, 0.0015, 0, 3)
	sn.Update(0.1, rnd)
	if sn.G != 0 {
		t.Fatalf("G: %v after zero-rate update", sn.G)
	}
	sn.SetRate(1000)
	sn.Update(0.1, rnd)
	if !(sn.G > 0) {
		t.Errorf("G: %v after rate 1000 update", sn.G)
	}
	sn.Init()
	if sn.G != 0 {
		t.Errorf("G: %v after Init", sn.G)
	}
}

func TestTotals(t *testing.T) {
	cs := []ShotNoise{
		{G: 0.01, Erev: 0},
		{G: 0.02, Erev: -75},
		{G: 0.005, Erev: 10},
	}
	g, gr := Totals(cs)
	if math.Abs(g-0.035) > difTol {
		t.Errorf("g: %v, want 0.035", g)
	}
	if math.Abs(gr-(-1.5+0.05)) > difTol {
		t.Errorf("gErev: %v, want %v", gr, -1.5+0.05)
	}
	g, gr = Totals(nil)
	if g != 0 || gr != 0 {
		t.Errorf("empty totals: %v %v", g, gr)
	}
}
