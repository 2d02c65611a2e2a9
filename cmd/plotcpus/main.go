// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotcpus plots latency percentile curves, one per CPU count.
//
// Usage:
//
//	plotcpus [-summary format] file.csv
//
// The input file must have columns cpus, threadspercpu, percentile and
// time (in nanoseconds). Rows with more than one thread per CPU or a
// percentile above 99 are ignored. Each distinct CPU count becomes one
// curve labelled "N CPUs", with time in microseconds on the X axis and
// percentile on the Y axis.
//
// The chart is written to file.pdf and file.png, next to the input.
//
// The -summary flag additionally prints the plotted curves to standard
// output as a "text", "csv" or "html" table.
package main

import (
	"gonum.org/v1/plot"

	"github.com/osbench/benchplot/chart"
	"github.com/osbench/benchplot/internal/plotcmd"
	"github.com/osbench/benchplot/latency"
	"github.com/osbench/benchplot/summary"
)

var cmd = &plotcmd.Command{Name: "plotcpus", Plot: render}

func main() {
	cmd.Main()
}

func render(path string) (*plot.Plot, *summary.Table, error) {
	series, err := latency.Run(path, latency.PerCPUConfig())
	if err != nil {
		return nil, nil, err
	}
	p, err := chart.Latency(series, nil)
	if err != nil {
		return nil, nil, err
	}
	return p, latency.Summarize(plotcmd.Title(path), series), nil
}
