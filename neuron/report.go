// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/matneuron/chans"
	"github.com/emer/matneuron/mat"
)

// SizeReport returns a string reporting the number of conductances and
// threshold units, the spikes recorded by each threshold, and the total
// memory footprint.  Spike records grow without bound until reset,
// so this is the number to watch on long runs.
func (nrn *Neuron) SizeReport() string {
	var b strings.Builder
	condMem := len(nrn.Conds) * int(unsafe.Sizeof(chans.ShotNoise{}))
	fmt.Fprintf(&b, "%14s:\t Conds: %d\t CondMem: %v\n", "Conductances", len(nrn.Conds), (datasize.ByteSize)(condMem).HumanReadable())
	thrMem := 0
	spkMem := 0
	for i := range nrn.Thrs {
		th := &nrn.Thrs[i]
		smem := cap(th.Spikes) * int(unsafe.Sizeof(float64(0)))
		thrMem += int(unsafe.Sizeof(mat.Threshold{}))
		spkMem += smem
		fmt.Fprintf(&b, "\t%14s:\t Spikes: %d\t SpikeMem: %v\n", th.Name, len(th.Spikes), (datasize.ByteSize)(smem).HumanReadable())
	}
	tot := int(unsafe.Sizeof(*nrn)) + condMem + thrMem + spkMem
	fmt.Fprintf(&b, "\n%14s:\t Thrs: %d\t SpikeMem: %v\t TotalMem: %v\n", "Neuron", len(nrn.Thrs), (datasize.ByteSize)(spkMem).HumanReadable(), (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}

func (nrn *Neuron) String() string {
	return fmt.Sprintf("Time: %g\tStep: %d\tVm: %g\tVmRange: [%g, %g]", nrn.Time.Time, nrn.Time.Step, nrn.Vm, nrn.VmRange.Min, nrn.VmRange.Max)
}
