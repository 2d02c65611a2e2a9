// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary prints the data behind a chart as a table, in text,
// CSV or HTML form.
package summary

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/safehtml/template"
	"github.com/osbench/benchplot/internal/texttab"
)

// A Table is a titled table of preformatted cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string

	// Numeric[i] reports whether column i holds numbers, which are
	// right-aligned in text output.
	Numeric []bool
}

// AddRow appends a row of cells to t.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Formats lists the formats accepted by Format.
var Formats = []string{"text", "csv", "html"}

// Format writes tables to w in the named format: "text", "csv" or
// "html".
func Format(w io.Writer, tables []*Table, format string) error {
	switch format {
	case "text":
		return FormatText(w, tables)
	case "csv":
		return FormatCSV(w, tables)
	case "html":
		return FormatHTML(w, tables)
	}
	return fmt.Errorf("unknown summary format %q", format)
}

// FormatText writes tables to w as aligned text tables separated by
// blank lines.
func FormatText(w io.Writer, tables []*Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if _, err := fmt.Fprintln(w, t.Title); err != nil {
				return err
			}
		}
		var tab texttab.Table
		tab.Row()
		for i, h := range t.Header {
			tab.Cell(h, t.align(i))
		}
		for _, row := range t.Rows {
			tab.Row()
			for i, c := range row {
				tab.Cell(c, t.align(i))
			}
		}
		if err := tab.Format(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) align(col int) texttab.CellOption {
	if col < len(t.Numeric) && t.Numeric[col] {
		return texttab.Right
	}
	return texttab.Left
}

// FormatCSV writes tables to w in CSV form. Each table starts with a
// one-field record holding its title, if it has one, followed by its
// header row; tables are separated by an empty record.
func FormatCSV(w io.Writer, tables []*Table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			cw.Write([]string{})
		}
		if t.Title != "" {
			cw.Write([]string{t.Title})
		}
		cw.Write(t.Header)
		cw.WriteAll(t.Rows)
	}
	cw.Flush()
	return cw.Error()
}

var htmlTemplate = template.Must(template.New("summary").Parse(`
{{- range .}}
<table class='benchplot'>
{{- if .Title}}
<caption>{{.Title}}</caption>
{{- end}}
<tr>{{range .Header}}<th>{{.}}{{end}}
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}{{end}}
{{- end}}
</table>
{{- end}}
`))

// FormatHTML writes tables to w as HTML tables.
func FormatHTML(w io.Writer, tables []*Table) error {
	return htmlTemplate.Execute(w, tables)
}
