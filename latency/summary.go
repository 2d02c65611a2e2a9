// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latency

import (
	"strconv"

	"github.com/osbench/benchplot/benchunit"
	"github.com/osbench/benchplot/summary"
)

// Summarize returns a table with one row per series giving its
// number of points and its time range, titled title.
func Summarize(title string, series []Series) *summary.Table {
	t := &summary.Table{
		Title:   title,
		Header:  []string{"scenario", "points", "min " + DisplayUnit, "max " + DisplayUnit, "max percentile"},
		Numeric: []bool{false, true, true, true, true},
	}
	type row struct {
		lo, hi, pct float64
	}
	rows := make([]row, len(series))
	var times []float64
	for i, s := range series {
		for j, p := range s.Points {
			if j == 0 || p.Time < rows[i].lo {
				rows[i].lo = p.Time
			}
			if j == 0 || p.Time > rows[i].hi {
				rows[i].hi = p.Time
			}
			if j == 0 || p.Percentile > rows[i].pct {
				rows[i].pct = p.Percentile
			}
		}
		if len(s.Points) > 0 {
			times = append(times, rows[i].lo, rows[i].hi)
		}
	}
	scale := benchunit.CommonScale(times)
	for i, s := range series {
		if len(s.Points) == 0 {
			t.AddRow(s.Scenario, "0", "-", "-", "-")
			continue
		}
		r := rows[i]
		t.AddRow(s.Scenario, strconv.Itoa(len(s.Points)),
			scale.Format(r.lo), scale.Format(r.hi), benchunit.NoOpScaler.Format(r.pct))
	}
	return t
}
