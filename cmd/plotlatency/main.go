// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotlatency plots latency percentile curves, one per scenario,
// against reference memory latencies.
//
// Usage:
//
//	plotlatency [-summary format] file.csv
//
// The input file must have columns scenario, percentile and time (in
// nanoseconds). Rows with a percentile above 99 are ignored. Each
// scenario becomes one curve, in the order scenarios first appear in
// the file. Vertical lines mark the latency of an L3 cache hit
// (0.020µs) and of a random Optane load (0.305µs).
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

var cmd = &plotcmd.Command{Name: "plotlatency", Plot: render}

func main() {
	cmd.Main()
}

func render(path string) (*plot.Plot, *summary.Table, error) {
	cfg := latency.ReferenceConfig()
	series, err := latency.Run(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	p, err := chart.Latency(series, cfg.References)
	if err != nil {
		return nil, nil, err
	}
	return p, latency.Summarize(plotcmd.Title(path), series), nil
}
