// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"strconv"

	"github.com/osbench/benchplot/benchunit"
	"github.com/osbench/benchplot/summary"
)

// Summarize returns a table with one row per bar, titled title.
func Summarize(title string, bars []Bar) *summary.Table {
	t := &summary.Table{
		Title: title,
		Header: []string{"benchmark", "scenario", "n",
			"package " + DisplayUnit, "±", "DRAM " + DisplayUnit, "±"},
		Numeric: []bool{false, false, true, true, true, true, true},
	}
	var vals []float64
	for _, b := range bars {
		vals = append(vals, b.Package.Mean, b.DRAM.Mean)
	}
	scale := benchunit.CommonScale(vals)
	for _, b := range bars {
		t.AddRow(b.Benchmark, b.Scenario, strconv.Itoa(b.Package.N),
			scale.Format(b.Package.Mean), scale.Format(b.Package.Err),
			scale.Format(b.DRAM.Mean), scale.Format(b.DRAM.Err))
	}
	return t
}
