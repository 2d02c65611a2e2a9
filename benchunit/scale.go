// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler formats numbers with a fixed number of digits after the
// decimal point.
type Scaler struct {
	Prec int // Digits after the decimal point; -1 for shortest exact
}

// Format formats val according to s. NaN is formatted as "-".
func (s Scaler) Format(val float64) string {
	if math.IsNaN(val) {
		return "-"
	}
	return strconv.FormatFloat(val, 'f', s.Prec, 64)
}

// NoOpScaler formats numbers with the smallest number of digits
// necessary to capture the exact value. This is intended for output
// consumed by another program, such as CSV.
var NoOpScaler = Scaler{-1}

// maxPrec bounds the digits printed after the decimal point.
const maxPrec = 10

// sigfigs[i] is the smallest value printed with i digits after the
// decimal point while still showing three significant digits. The
// thresholds come from parsing printed values so they round exactly
// the way printing does.
var sigfigs = mkSigfigs()

func mkSigfigs() []float64 {
	var t []float64
	for prec := 0; prec <= maxPrec; prec++ {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("99.5e%d", -prec), 64)
		t = append(t, thresh)
	}
	return t
}

// CommonScale returns a Scaler to apply to all of vals. It shows at
// least three significant digits of every value.
func CommonScale(vals []float64) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3}
	}
	for prec, thresh := range sigfigs {
		if min >= thresh {
			return Scaler{prec}
		}
	}
	return Scaler{maxPrec}
}
