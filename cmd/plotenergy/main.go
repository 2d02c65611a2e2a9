// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotenergy plots energy per operation as stacked bars.
//
// Usage:
//
//	plotenergy [-summary format] file.csv
//
// The input file must have columns Benchmark, Scenario,
// PackageEnergyPerOperation(nJ) and DRAMEnergyPerOperation(nJ). Rows
// are grouped by benchmark and then by scenario, keeping the order in
// which they first appear. Each group becomes one bar labelled with
// its scenario: the mean package energy at the bottom and the mean
// DRAM energy on top, both with standard error bars.
//
// The chart is written to file.pdf and file.png, next to the input.
//
// The -summary flag additionally prints the bars to standard output
// as a "text", "csv" or "html" table.
package main

import (
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/osbench/benchplot/chart"
	"github.com/osbench/benchplot/energy"
	"github.com/osbench/benchplot/internal/plotcmd"
	"github.com/osbench/benchplot/summary"
)

var cmd = &plotcmd.Command{Name: "plotenergy", Plot: render}

func main() {
	cmd.Main()
}

func render(path string) (*plot.Plot, *summary.Table, error) {
	bars, err := energy.Run(path)
	if err != nil {
		return nil, nil, err
	}
	p, err := chart.Energy(bars, filepath.Base(chart.OutputPrefix(path)))
	if err != nil {
		return nil, nil, err
	}
	return p, energy.Summarize(plotcmd.Title(path), bars), nil
}
