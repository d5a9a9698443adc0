// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/lab/table"
	"cogentcore.org/lab/tensor"
	"github.com/emer/matneuron"
)

// CountsTable organizes flat Experiment counts (index-major, then
// threshold unit) into a table with one row per sweep index:
// Index, Intensity, Exc, Inh, then one count column per threshold name.
// intensities may be nil.
func CountsTable(names []string, intensities, excRates, inhRates []float64, counts []int) (*table.Table, error) {
	n := len(excRates)
	nthr := len(names)
	switch {
	case len(inhRates) != n:
		return nil, fmt.Errorf("%w: %d excitatory rates vs. %d inhibitory rates", matneuron.ErrInvalidParam, n, len(inhRates))
	case intensities != nil && len(intensities) != n:
		return nil, fmt.Errorf("%w: %d intensities vs. %d rates", matneuron.ErrInvalidParam, len(intensities), n)
	case len(counts) != n*nthr:
		return nil, fmt.Errorf("%w: %d counts for %d rates x %d thresholds", matneuron.ErrInvalidParam, len(counts), n, nthr)
	}
	dt := table.New()
	metadata.SetName(dt, "SpikeCounts")
	idx := dt.AddIntColumn("Index")
	ins := dt.AddFloat64Column("Intensity")
	exc := dt.AddFloat64Column("Exc")
	inh := dt.AddFloat64Column("Inh")
	cols := make([]*tensor.Int, nthr)
	for ti, nm := range names {
		cols[ti] = dt.AddIntColumn(nm)
	}
	dt.SetNumRows(n)
	for i := range n {
		idx.SetInt1D(i, i)
		if intensities != nil {
			ins.SetFloat1D(intensities[i], i)
		}
		exc.SetFloat1D(excRates[i], i)
		inh.SetFloat1D(inhRates[i], i)
		for ti := range cols {
			cols[ti].SetInt1D(counts[i*nthr+ti], i)
		}
	}
	return dt, nil
}

// WriteTable writes the table as tab-separated values with a header row.
func WriteTable(w io.Writer, dt *table.Table) error {
	return dt.WriteCSV(w, tensor.Tab, true)
}
