// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package energy aggregates per-operation energy measurements into
// one bar per benchmark scenario.
package energy

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/osbench/benchplot/benchmath"
	"github.com/osbench/benchplot/benchunit"
	"github.com/osbench/benchplot/csvtab"
)

// Column names.
const (
	ColBenchmark = "Benchmark"
	ColScenario  = "Scenario"
	ColPackage   = "PackageEnergyPerOperation(nJ)"
	ColDRAM      = "DRAMEnergyPerOperation(nJ)"
)

// DisplayUnit labels scaled energies.
const DisplayUnit = "mJ"

// scaledUnit is what means and standard errors are converted to from
// the unit in their column header: a factor of 1000 for nJ columns.
// Scaled values are labelled DisplayUnit.
const scaledUnit = "µJ"

// A Bar is the aggregated energy of one (benchmark, scenario) pair.
type Bar struct {
	Benchmark string
	Scenario  string
	Package   benchmath.Summary
	DRAM      benchmath.Summary
}

// Total returns the stacked height of b.
func (b Bar) Total() float64 {
	return b.Package.Mean + b.DRAM.Mean
}

// Schema returns the columns read from a file.
func Schema() csvtab.Schema {
	return csvtab.Schema{
		{Name: ColBenchmark, Kind: csvtab.String},
		{Name: ColScenario, Kind: csvtab.String},
		{Name: ColPackage, Kind: csvtab.Float},
		{Name: ColDRAM, Kind: csvtab.Float},
	}
}

// Load reads the file at path.
func Load(path string) (*table.Table, error) {
	return csvtab.ReadFile(path, Schema())
}

// Run loads the file at path and aggregates it.
func Run(path string) ([]Bar, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Aggregate(t)
}

// Output columns of the aggregation.
const (
	prefixN  = "n "
	prefixMu = "mean "
	prefixSE = "sem "
)

// Aggregate groups t by benchmark and then by scenario and summarizes
// both energy columns of every group. Benchmarks appear in the order
// they first appear in t, and scenarios in the order they first
// appear within their benchmark. A scenario name that occurs under
// several benchmarks yields one Bar per benchmark.
func Aggregate(t *table.Table) ([]Bar, error) {
	if err := csvtab.Check(t, Schema()); err != nil {
		return nil, err
	}

	cols := []string{ColPackage, ColDRAM}
	divs := make([]float64, len(cols))
	for i, col := range cols {
		d, err := divisor(col)
		if err != nil {
			return nil, err
		}
		divs[i] = d
	}

	agg := ggstat.Agg(ColBenchmark, ColScenario)(aggSummary(cols, divs)).F(t)

	var bars []Bar
	for _, gid := range agg.Tables() {
		at := agg.Table(gid)
		benches := at.MustColumn(ColBenchmark).([]string)
		scenarios := at.MustColumn(ColScenario).([]string)
		pkg := summaries(at, ColPackage)
		dram := summaries(at, ColDRAM)
		for i := range benches {
			bars = append(bars, Bar{
				Benchmark: benches[i],
				Scenario:  scenarios[i],
				Package:   pkg[i],
				DRAM:      dram[i],
			})
		}
	}
	return bars, nil
}

// divisor returns the factor that scales values of the energy column
// col, whose header names its unit, to scaledUnit.
func divisor(col string) (float64, error) {
	unit := benchunit.ParseColumn(col).Unit
	d, err := benchunit.Rescale(1, scaledUnit, unit)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return d, nil
}

// aggSummary returns an aggregate function that computes the
// benchmath summary of each of cols. For each column it adds
// "n <col>", "mean <col>" and "sem <col>", divided by the matching
// element of divs.
func aggSummary(cols []string, divs []float64) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		for i, col := range cols {
			ns := make([]int, 0, len(input.Tables()))
			means := make([]float64, 0, len(input.Tables()))
			sems := make([]float64, 0, len(input.Tables()))
			for _, gid := range input.Tables() {
				xs := input.Table(gid).MustColumn(col).([]float64)
				sum := benchmath.NewSample(xs).Summary(divs[i])
				ns = append(ns, sum.N)
				means = append(means, sum.Mean)
				sems = append(sems, sum.Err)
			}
			b.Add(prefixN+col, ns)
			b.Add(prefixMu+col, means)
			b.Add(prefixSE+col, sems)
		}
	}
}

func summaries(t *table.Table, col string) []benchmath.Summary {
	ns := t.MustColumn(prefixN + col).([]int)
	means := t.MustColumn(prefixMu + col).([]float64)
	sems := t.MustColumn(prefixSE + col).([]float64)
	out := make([]benchmath.Summary, len(ns))
	for i := range out {
		out[i] = benchmath.Summary{N: ns[i], Mean: means[i], Err: sems[i]}
	}
	return out
}
