// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/osbench/benchplot/benchmath"
	"github.com/osbench/benchplot/energy"
	"github.com/osbench/benchplot/latency"
)

var testSeries = []latency.Series{
	{Scenario: "1 CPUs", Points: []latency.Point{{Time: 0.01, Percentile: 0}, {Time: 1, Percentile: 50}, {Time: 2, Percentile: 99}}},
	{Scenario: "2 CPUs", Points: []latency.Point{{Time: 0.5, Percentile: 50}}},
	{Scenario: "empty"},
}

var testBars = []energy.Bar{
	{Benchmark: "A", Scenario: "X", Package: benchmath.Summary{N: 2, Mean: 2, Err: 1}, DRAM: benchmath.Summary{N: 2, Mean: 0.5, Err: 0.25}},
	{Benchmark: "A", Scenario: "Y", Package: benchmath.Summary{N: 1, Mean: 3, Err: math.NaN()}, DRAM: benchmath.Summary{N: 1, Mean: 1, Err: math.NaN()}},
	{Benchmark: "B", Scenario: "X", Package: benchmath.Summary{N: 2, Mean: 4, Err: 0}, DRAM: benchmath.Summary{N: 2, Mean: 0, Err: 0}},
}

func checkSaved(t *testing.T, prefix string) {
	t.Helper()
	for _, ext := range Formats {
		fi, err := os.Stat(prefix + ext)
		if err != nil {
			t.Errorf("missing output: %v", err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", prefix+ext)
		}
	}
}

func TestLatency(t *testing.T) {
	for _, refs := range [][]latency.Reference{nil, latency.DefaultReferences} {
		p, err := Latency(testSeries, refs)
		if err != nil {
			t.Fatal(err)
		}
		if p.X.Label.Text != "Time (µs)" || p.Y.Label.Text != "Percentile (%)" {
			t.Errorf("unexpected axis labels %q, %q", p.X.Label.Text, p.Y.Label.Text)
		}
		if p.Y.Max != 99 || p.Y.Min != 0 {
			t.Errorf("Y range [%v, %v], want [0, 99]", p.Y.Min, p.Y.Max)
		}
		prefix := filepath.Join(t.TempDir(), "latency")
		if err := Save(p, prefix); err != nil {
			t.Fatal(err)
		}
		checkSaved(t, prefix)
	}
}

func TestLatencyReferencesOnly(t *testing.T) {
	p, err := Latency(nil, latency.DefaultReferences)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0.020 || p.X.Max != 0.305 {
		t.Errorf("X range [%v, %v], want [0.02, 0.305]", p.X.Min, p.X.Max)
	}
}

func TestLatencyBadData(t *testing.T) {
	bad := []latency.Series{{Scenario: "nan", Points: []latency.Point{{Time: math.NaN(), Percentile: 50}}}}
	if _, err := Latency(bad, nil); err == nil {
		t.Errorf("Latency accepted a NaN time")
	}
}

func TestStackErrors(t *testing.T) {
	pkg, dram := stackErrors(testBars)
	type errBar struct{ x, y, lo, hi float64 }
	check := func(name string, pts errorPoints, want []errBar) {
		t.Helper()
		if pts.Len() != len(want) {
			t.Fatalf("%s: got %d points, want %d", name, pts.Len(), len(want))
		}
		for i, w := range want {
			x, y := pts.XY(i)
			lo, hi := pts.YError(i)
			if got := (errBar{x, y, lo, hi}); got != w {
				t.Errorf("%s[%d] = %+v, want %+v", name, i, got, w)
			}
		}
	}
	check("package", pkg, []errBar{{0, 2, 1, 1}, {1, 3, 0, 0}, {2, 4, 0, 0}})
	check("DRAM", dram, []errBar{{0, 2.5, 0.25, 0.25}, {1, 4, 0, 0}, {2, 4, 0, 0}})
}

func TestEnergy(t *testing.T) {
	p, err := Energy(testBars, "energy-run")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Benchmark (energy-run)"; p.X.Label.Text != want {
		t.Errorf("X label %q, want %q", p.X.Label.Text, want)
	}
	if want := "Energy per operation (mJ)"; p.Y.Label.Text != want {
		t.Errorf("Y label %q, want %q", p.Y.Label.Text, want)
	}
	if p.Y.Max < 4 {
		t.Errorf("Y axis max %v does not cover stacked bars", p.Y.Max)
	}
	prefix := filepath.Join(t.TempDir(), "energy")
	if err := Save(p, prefix); err != nil {
		t.Fatal(err)
	}
	checkSaved(t, prefix)
}

func TestEnergyEmpty(t *testing.T) {
	p, err := Energy(nil, "none")
	if err != nil {
		t.Fatal(err)
	}
	prefix := filepath.Join(t.TempDir(), "none")
	if err := Save(p, prefix); err != nil {
		t.Fatal(err)
	}
	checkSaved(t, prefix)
}

func TestSaveError(t *testing.T) {
	p, err := Energy(testBars, "x")
	if err != nil {
		t.Fatal(err)
	}
	prefix := filepath.Join(t.TempDir(), "no-such-dir", "energy")
	if err := Save(p, prefix); err == nil {
		t.Errorf("Save into a missing directory succeeded")
	}
}

func TestOutputPrefix(t *testing.T) {
	for _, tc := range []struct{ path, want string }{
		{"latency.csv", "latency"},
		{"results/run.1/energy.csv", "results/run.1/energy"},
		{"data", "data"},
		{"archive.tar.csv", "archive.tar"},
		{".hidden", ".hidden"},
	} {
		if got := OutputPrefix(tc.path); got != tc.want {
			t.Errorf("OutputPrefix(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
