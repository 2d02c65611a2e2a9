// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latency turns latency percentile measurements into one
// percentile curve per scenario.
//
// Input files have one row per (scenario, percentile) sample with the
// columns "percentile" and "time" (nanoseconds). The scenario either
// comes from a "scenario" column or, for per-CPU files, is derived
// from the "cpus" column of rows with one thread per CPU.
package latency

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/osbench/benchplot/benchunit"
	"github.com/osbench/benchplot/csvtab"
)

// Column names.
const (
	ColPercentile    = "percentile"
	ColTime          = "time"
	ColCPUs          = "cpus"
	ColThreadsPerCPU = "threadspercpu"
	ColScenario      = "scenario"
)

// DisplayUnit is the unit of Point.Time and Reference.Time.
const DisplayUnit = "µs"

// DefaultMaxPercentile is the largest percentile plotted by default.
// Tail percentiles above it are dominated by outliers.
const DefaultMaxPercentile = 99

// A LineKind is the dash pattern of a reference line.
type LineKind int

const (
	Dotted LineKind = iota
	Dashed
)

// A Reference is a known hardware latency drawn as a vertical line
// for comparison.
type Reference struct {
	Label string
	Time  float64 // in DisplayUnit
	Kind  LineKind
}

// DefaultReferences are the reference latencies drawn on latency
// charts.
var DefaultReferences = []Reference{
	// Intel Xeon E5 v3 (Haswell-EP) L3 access latency.
	{"L3 cache", 0.020, Dotted},
	// Intel Optane DC persistent memory, random load.
	{"Optane (random load)", 0.305, Dashed},
}

// Config selects a variant of the pipeline.
type Config struct {
	// PerCPU derives scenarios from the "cpus" column, keeping only
	// rows with one thread per CPU. Otherwise the "scenario" column
	// is used as is.
	PerCPU bool

	// MaxPercentile drops rows with a larger percentile. Zero means
	// DefaultMaxPercentile.
	MaxPercentile float64

	// TimeUnit is the unit of the "time" column. Empty means "ns".
	TimeUnit string

	// References are drawn alongside the series.
	References []Reference
}

// PerCPUConfig returns the configuration for per-CPU files.
func PerCPUConfig() Config {
	return Config{PerCPU: true, MaxPercentile: DefaultMaxPercentile, TimeUnit: "ns"}
}

// ReferenceConfig returns the configuration for files with a scenario
// column, plotted against DefaultReferences.
func ReferenceConfig() Config {
	return Config{MaxPercentile: DefaultMaxPercentile, TimeUnit: "ns", References: DefaultReferences}
}

// A Point is one sample of a percentile curve.
type Point struct {
	Time       float64 // in DisplayUnit
	Percentile float64
}

// A Series is the percentile curve of one scenario.
type Series struct {
	Scenario string
	Points   []Point // in input row order
}

// Schema returns the columns read from a file.
func Schema(perCPU bool) csvtab.Schema {
	s := csvtab.Schema{
		{Name: ColPercentile, Kind: csvtab.Float},
		{Name: ColTime, Kind: csvtab.Float},
	}
	if perCPU {
		return append(s,
			csvtab.Column{Name: ColCPUs, Kind: csvtab.Int},
			csvtab.Column{Name: ColThreadsPerCPU, Kind: csvtab.Int})
	}
	return append(s, csvtab.Column{Name: ColScenario, Kind: csvtab.String})
}

// ScenarioLabel returns the scenario label of a per-CPU row.
func ScenarioLabel(cpus int) string {
	return fmt.Sprintf("%d CPUs", cpus)
}

// Load reads the file at path with the columns cfg needs.
func Load(path string, cfg Config) (*table.Table, error) {
	return csvtab.ReadFile(path, Schema(cfg.PerCPU))
}

// Run loads the file at path and transforms it into series.
func Run(path string, cfg Config) ([]Series, error) {
	t, err := Load(path, cfg)
	if err != nil {
		return nil, err
	}
	return Transform(t, cfg)
}

// Transform filters t, converts its times to DisplayUnit and splits it
// into one Series per scenario. Series appear in the order their
// scenario first appears in t.
func Transform(t *table.Table, cfg Config) ([]Series, error) {
	if err := csvtab.Check(t, Schema(cfg.PerCPU)); err != nil {
		return nil, err
	}
	unit := cfg.TimeUnit
	if unit == "" {
		unit = "ns"
	}
	if _, err := benchunit.Rescale(0, unit, DisplayUnit); err != nil {
		return nil, err
	}

	var g table.Grouping = t
	maxPct := cfg.MaxPercentile
	if maxPct == 0 {
		maxPct = DefaultMaxPercentile
	}
	g = table.Filter(g, func(p float64) bool { return p <= maxPct }, ColPercentile)
	if cfg.PerCPU {
		g = table.FilterEq(g, ColThreadsPerCPU, 1)
		g = table.MapCols(g, func(cpus []int, scenario []string) {
			for i, n := range cpus {
				scenario[i] = ScenarioLabel(n)
			}
		}, ColCPUs)(ColScenario)
	}
	g = table.MapCols(g, func(in, out []float64) {
		for i, v := range in {
			out[i], _ = benchunit.Rescale(v, unit, DisplayUnit)
		}
	}, ColTime)(ColTime)
	g = table.GroupBy(g, ColScenario)

	series := make([]Series, 0, len(g.Tables()))
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		times := sub.MustColumn(ColTime).([]float64)
		pcts := sub.MustColumn(ColPercentile).([]float64)
		s := Series{Scenario: gid.Label().(string), Points: make([]Point, len(times))}
		for i := range times {
			s.Points[i] = Point{Time: times[i], Percentile: pcts[i]}
		}
		series = append(series, s)
	}
	return series, nil
}
