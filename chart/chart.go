// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders latency and energy results with gonum/plot
// and saves them as PDF and PNG.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/osbench/benchplot/benchmath"
	"github.com/osbench/benchplot/energy"
	"github.com/osbench/benchplot/latency"
)

// Size of saved charts.
const (
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch
)

// Formats are the file extensions Save writes, in order.
var Formats = []string{".pdf", ".png"}

const (
	lineWidth = 1.5
	barWidth  = 24
)

// Latency returns a chart with one percentile curve per series and a
// vertical line for each reference latency.
func Latency(series []latency.Series, refs []latency.Reference) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Time (" + latency.DisplayUnit + ")"
	p.Y.Label.Text = "Percentile (%)"

	ylo, yhi := math.Inf(1), math.Inf(-1)
	for i, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = pt.Time
			xys[j].Y = pt.Percentile
			ylo = math.Min(ylo, pt.Percentile)
			yhi = math.Max(yhi, pt.Percentile)
		}
		if len(xys) == 0 {
			continue
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Scenario, err)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(lineWidth)
		p.Add(l)
		p.Legend.Add(s.Scenario, l)
	}

	// Reference lines span the data's percentile range so they do
	// not stretch the axis.
	if ylo > yhi {
		ylo, yhi = 0, 100
	}
	for _, r := range refs {
		l, err := plotter.NewLine(plotter.XYs{{X: r.Time, Y: ylo}, {X: r.Time, Y: yhi}})
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", r.Label, err)
		}
		l.Color = color.Black
		l.Width = vg.Points(1)
		l.Dashes = dashes(r.Kind)
		p.Add(l)
		p.Legend.Add(r.Label, l)
	}
	return p, nil
}

func dashes(k latency.LineKind) []vg.Length {
	switch k {
	case latency.Dotted:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case latency.Dashed:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return nil
}

// errorPoints are error bars at given positions.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// stackErrors returns the package and DRAM error bars of bars. DRAM
// error bars sit on top of the stacked bar. A NaN standard error is
// drawn as an empty bar.
func stackErrors(bars []energy.Bar) (pkg, dram errorPoints) {
	n := len(bars)
	pkg = errorPoints{make(plotter.XYs, n), make(plotter.YErrors, n)}
	dram = errorPoints{make(plotter.XYs, n), make(plotter.YErrors, n)}
	for i, b := range bars {
		x := float64(i)
		pkg.XYs[i] = plotter.XY{X: x, Y: b.Package.Mean}
		pkg.YErrors[i].Low, pkg.YErrors[i].High = span(b.Package)
		dram.XYs[i] = plotter.XY{X: x, Y: b.Total()}
		dram.YErrors[i].Low, dram.YErrors[i].High = span(b.DRAM)
	}
	return pkg, dram
}

func span(s benchmath.Summary) (lo, hi float64) {
	return s.Mean - s.Lo(), s.Hi() - s.Mean
}

// Energy returns a stacked bar chart of bars: package energy at the
// bottom and DRAM energy on top, each with a standard error bar.
// name is shown in the X axis label.
func Energy(bars []energy.Bar, name string) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = fmt.Sprintf("Benchmark (%s)", name)
	p.Y.Label.Text = "Energy per operation (" + energy.DisplayUnit + ")"
	if len(bars) == 0 {
		return p, nil
	}

	labels := make([]string, len(bars))
	pkgVals := make(plotter.Values, len(bars))
	dramVals := make(plotter.Values, len(bars))
	for i, b := range bars {
		labels[i] = b.Scenario
		pkgVals[i] = b.Package.Mean
		dramVals[i] = b.DRAM.Mean
	}

	pkg, err := plotter.NewBarChart(pkgVals, vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("package energy: %w", err)
	}
	pkg.Color = plotutil.Color(0)
	pkg.LineStyle.Width = 0

	dram, err := plotter.NewBarChart(dramVals, vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("DRAM energy: %w", err)
	}
	dram.Color = plotutil.Color(1)
	dram.LineStyle.Width = 0
	dram.StackOn(pkg)

	pkgPts, dramPts := stackErrors(bars)
	pkgErr, err := plotter.NewYErrorBars(pkgPts)
	if err != nil {
		return nil, fmt.Errorf("package energy: %w", err)
	}
	dramErr, err := plotter.NewYErrorBars(dramPts)
	if err != nil {
		return nil, fmt.Errorf("DRAM energy: %w", err)
	}

	p.Add(pkg, dram, pkgErr, dramErr)
	p.Legend.Add("Package", pkg)
	p.Legend.Add("DRAM", dram)
	p.Legend.Top = true
	p.NominalX(labels...)
	return p, nil
}

// OutputPrefix returns path without its extension. A leading dot of
// the file name does not start an extension.
func OutputPrefix(path string) string {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		return path
	}
	return strings.TrimSuffix(path, ext)
}

// Save writes p to prefix.pdf and prefix.png. It stops at the first
// file that cannot be written.
func Save(p *plot.Plot, prefix string) error {
	for _, ext := range Formats {
		if err := p.Save(Width, Height, prefix+ext); err != nil {
			return err
		}
	}
	return nil
}
