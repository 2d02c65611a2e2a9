// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtab loads comma-separated measurement files into
// go-gg tables.
//
// A file starts with a header row naming its columns. The caller
// describes the columns it needs, and their types, with a Schema.
// Columns in the file that the Schema does not name are ignored;
// Schema columns missing from the file are an error.
package csvtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Kind is the Go type a column is stored as.
type Kind int

const (
	// String columns are stored as []string.
	String Kind = iota
	// Float columns are stored as []float64.
	Float
	// Int columns are stored as []int.
	Int
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Float:
		return "Float"
	case Int:
		return "Int"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Column names one column of a Schema.
type Column struct {
	Name string
	Kind Kind
}

// A Schema is the ordered set of columns to load from a file. The
// resulting table has the Schema's columns in Schema order.
type Schema []Column

// A MissingColumnError reports a Schema column absent from a file's
// header row.
type MissingColumnError struct {
	FileName string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.FileName, e.Column)
}

// A SyntaxError reports a value that could not be converted to its
// column's Kind.
type SyntaxError struct {
	FileName string
	Line     int // 1-based, counting the header row
	Column   string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: %v", e.FileName, e.Line, e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ReadFile reads the CSV file at path into a Table with the columns
// of s.
func ReadFile(path string, s Schema) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, s)
}

// Read reads CSV data from r into a Table with the columns of s.
// fileName is used in error messages; it is purely diagnostic.
func Read(r io.Reader, fileName string, s Schema) (*table.Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", fileName)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	// Locate each schema column in the header.
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	pos := make([]int, len(s))
	for i, c := range s {
		p, ok := index[c.Name]
		if !ok {
			return nil, &MissingColumnError{fileName, c.Name}
		}
		pos[i] = p
	}

	cols := make([]builder, len(s))
	for i, c := range s {
		cols[i] = newBuilder(c.Kind)
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		line, _ := cr.FieldPos(0)
		for i, c := range s {
			if err := cols[i].append(rec[pos[i]]); err != nil {
				return nil, &SyntaxError{fileName, line, c.Name, err}
			}
		}
	}

	var tb table.Builder
	for i, c := range s {
		tb.Add(c.Name, cols[i].slice())
	}
	return tb.Done(), nil
}

// A builder accumulates the values of one column.
type builder interface {
	append(field string) error
	slice() table.Slice
}

func newBuilder(k Kind) builder {
	switch k {
	case Float:
		return &floatBuilder{[]float64{}}
	case Int:
		return &intBuilder{[]int{}}
	}
	return &stringBuilder{[]string{}}
}

type stringBuilder struct{ vals []string }

func (b *stringBuilder) append(field string) error {
	b.vals = append(b.vals, field)
	return nil
}

func (b *stringBuilder) slice() table.Slice { return b.vals }

type floatBuilder struct{ vals []float64 }

func (b *floatBuilder) append(field string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return unwrapNum(err)
	}
	b.vals = append(b.vals, v)
	return nil
}

func (b *floatBuilder) slice() table.Slice { return b.vals }

type intBuilder struct{ vals []int }

func (b *intBuilder) append(field string) error {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return unwrapNum(err)
	}
	b.vals = append(b.vals, v)
	return nil
}

func (b *intBuilder) slice() table.Slice { return b.vals }

// unwrapNum strips the function name from a *strconv.NumError,
// which already carries the offending text.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return fmt.Errorf("invalid value %q: %w", ne.Num, ne.Err)
	}
	return err
}

// Check reports whether t has every column of s with the Go type of
// its Kind. Pipelines call it before indexing columns of a table
// they did not load themselves.
func Check(t *table.Table, s Schema) error {
	for _, c := range s {
		col := t.Column(c.Name)
		if col == nil {
			return fmt.Errorf("table has no column %q", c.Name)
		}
		ok := false
		switch col.(type) {
		case []string:
			ok = c.Kind == String
		case []float64:
			ok = c.Kind == Float
		case []int:
			ok = c.Kind == Int
		}
		if !ok {
			return fmt.Errorf("column %q has type %T, want %v", c.Name, col, c.Kind)
		}
	}
	return nil
}
