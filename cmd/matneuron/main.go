// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matneuron runs an intensity sweep of a MAT neuron and writes
// the summed spike counts per threshold unit as a tab-separated table.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/emer/matneuron/sweep"
)

func main() {
	cfg := sweep.NewConfig()
	opts := cli.DefaultOptions(cfg.Name, cfg.Title)
	cli.Run(opts, cfg, sweep.RunSim)
}
