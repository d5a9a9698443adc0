// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"
	"slices"
	"sort"

	"github.com/emer/matneuron"
)

// presets are the MAT parameters fit to the standard cortical cell
// classes, in the order Alpha1, Alpha2, Tau1, Tau2, Omega, Refract.
var presets = map[string][6]float64{
	// regular spiking
	"RS": {30, 2, 10, 200, -65, 2},
	// intrinsic bursting
	"IB": {7.5, 1.5, 10, 200, -64.3, 2},
	// fast spiking
	"FS": {10, 0.2, 10, 200, -62.4, 2},
	// chattering: negative fast adaptation
	"CH": {-0.5, 0.4, 10, 200, -61.8, 2},
}

// Preset returns a READY threshold unit for the named cell class:
// RS, IB, FS or CH.
func Preset(name string) (Threshold, error) {
	p, ok := presets[name]
	if !ok {
		return Threshold{}, fmt.Errorf("%w: unknown MAT preset %q, must be one of %v", matneuron.ErrInvalidParam, name, PresetNames())
	}
	return New(name, p[0], p[1], p[2], p[3], p[4], p[5])
}

// Presets returns threshold units for each of the given preset names, in order.
func Presets(names ...string) ([]Threshold, error) {
	ths := make([]Threshold, 0, len(names))
	for _, nm := range names {
		th, err := Preset(nm)
		if err != nil {
			return nil, err
		}
		ths = append(ths, th)
	}
	return ths, nil
}

// PresetNames returns the sorted list of available preset names
func PresetNames() []string {
	nms := make([]string, 0, len(presets))
	for nm := range presets {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return slices.Clip(nms)
}
