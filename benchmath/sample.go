// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes summary statistics over repeated
// benchmark measurements.
package benchmath

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of a single quantity,
// such as the energy per operation of one benchmark scenario.
type Sample struct {
	// Values are the measured values, in input order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. The
// Sample retains values.
func NewSample(values []float64) *Sample {
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values}
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.sample().Mean()
}

// StdDev returns the sample standard deviation of s, using n-1 in
// the denominator. It is NaN if s has fewer than two values.
func (s *Sample) StdDev() float64 {
	if len(s.Values) < 2 {
		return math.NaN()
	}
	return s.sample().StdDev()
}

// StdErr returns the standard error of the mean of s,
// StdDev/sqrt(n). It is NaN if s has fewer than two values.
func (s *Sample) StdErr() float64 {
	return s.StdDev() / math.Sqrt(float64(len(s.Values)))
}

// A Summary summarizes a Sample.
type Summary struct {
	// N is the number of values in the sample.
	N int

	// Mean is the arithmetic mean of the sample.
	Mean float64

	// Err is the standard error of Mean. It is NaN if N < 2.
	Err float64
}

// Summary returns the mean and standard error of s, each divided by
// div. This is how measurements are moved into a larger display unit:
// the statistics are computed on the raw values and divided
// afterwards.
func (s *Sample) Summary(div float64) Summary {
	return Summary{
		N:    len(s.Values),
		Mean: s.Mean() / div,
		Err:  s.StdErr() / div,
	}
}

// Lo returns the lower end of the one standard error interval around
// the mean. A NaN error is treated as zero.
func (s Summary) Lo() float64 {
	return s.Mean - s.err()
}

// Hi returns the upper end of the one standard error interval around
// the mean. A NaN error is treated as zero.
func (s Summary) Hi() float64 {
	return s.Mean + s.err()
}

func (s Summary) err() float64 {
	if math.IsNaN(s.Err) {
		return 0
	}
	return s.Err
}
