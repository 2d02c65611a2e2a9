// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates the units carried in measurement
// column headers and formats numbers in those units.
//
// Measurement files name their units in the column header, as in
// "PackageEnergyPerOperation(nJ)". Units are a base unit ("s", "J",
// "B") with an optional SI prefix ("n", "µ", "m", "k", ...).
package benchunit

import (
	"fmt"
	"math"
	"strings"
)

// A Column is a measurement column header split into its name and
// unit.
type Column struct {
	Name string
	Unit string // "" if the header carries no unit
}

// ParseColumn splits a column header of the form "Name(unit)". A
// header without a trailing parenthesized unit is returned as a
// Column with an empty Unit.
func ParseColumn(header string) Column {
	h := strings.TrimSpace(header)
	if strings.HasSuffix(h, ")") {
		if i := strings.LastIndexByte(h, '('); i > 0 {
			return Column{
				Name: strings.TrimSpace(h[:i]),
				Unit: strings.TrimSpace(h[i+1 : len(h)-1]),
			}
		}
	}
	return Column{Name: h}
}

// siPrefixes maps SI prefixes to their power of ten. Both the micro
// sign (U+00B5) and the Greek mu (U+03BC) are accepted, as is the
// ASCII "u".
var siPrefixes = map[string]int{
	"T": 12,
	"G": 9,
	"M": 6,
	"k": 3,
	"m": -3,
	"µ": -6,
	"μ": -6,
	"u": -6,
	"n": -9,
	"p": -12,
}

// SplitUnit splits unit into its power-of-ten exponent and base unit.
// A unit consisting of a single character is always a base unit, so
// "m" is meters, not milli-nothing.
func SplitUnit(unit string) (exp int, base string) {
	for prefix, e := range siPrefixes {
		if strings.HasPrefix(unit, prefix) && len(unit) > len(prefix) {
			return e, unit[len(prefix):]
		}
	}
	return 0, unit
}

// Rescale converts v from unit "from" to unit "to". Both units must
// have the same base unit. The conversion divides or multiplies by an
// exact power of ten, so converting 1500 ns to µs yields exactly
// 1500/1000.
func Rescale(v float64, from, to string) (float64, error) {
	fe, fb := SplitUnit(from)
	te, tb := SplitUnit(to)
	if fb != tb {
		return 0, fmt.Errorf("cannot convert %s to %s", from, to)
	}
	switch d := fe - te; {
	case d > 0:
		return v * math.Pow10(d), nil
	case d < 0:
		return v / math.Pow10(-d), nil
	}
	return v, nil
}
