// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath reduces repeated benchmark measurements to
// descriptive statistics.
//
// Samples are durations in nanoseconds (or, for memory, bytes). A
// reduction never modifies the caller's slice.
//
// Statistics carry a list of warnings, captured as an []error value.
// These aren't errors that prevent analysis, but should be presented
// to the user along with the results.
package benchmath

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// NanosPerSecond is the number of sample units in the throughput base.
const NanosPerSecond = 1e9

var (
	// ErrEmptySampleSet is returned when statistics are requested
	// for a sequence with no samples.
	ErrEmptySampleSet = errors.New("empty sample set")

	// ErrDegenerateAverage is reported as a warning when every
	// sample is zero. Ratios relative to the average are
	// undefined and are reported as 0.
	ErrDegenerateAverage = errors.New("average is zero; deviation ratio and throughput are undefined")

	// ErrBadPercentile is returned for a percentile rank outside (0, 100].
	ErrBadPercentile = errors.New("percentile rank out of range (0, 100]")
)

// Statistics summarizes one sequence of samples.
type Statistics struct {
	Average float64
	// IPS is iterations per second, NanosPerSecond / Average.
	IPS         float64
	StdDev      float64 // population standard deviation
	StdDevRatio float64 // StdDev / Average
	StdDevIPS   float64 // IPS * StdDevRatio
	Median      float64
	Mode        Mode
	Min, Max    float64
	SampleSize  int

	// Percentiles maps a requested rank (e.g., 99) to its value.
	Percentiles map[float64]float64

	// Warnings is a list of warnings about these statistics that
	// should be reported to the user.
	Warnings []error
}

// Degenerate reports whether the average was zero, in which case
// IPS, StdDevRatio and StdDevIPS hold 0 rather than a real value.
func (s *Statistics) Degenerate() bool {
	for _, w := range s.Warnings {
		if errors.Is(w, ErrDegenerateAverage) {
			return true
		}
	}
	return false
}

// Percentile returns the value at rank p and whether it was computed.
func (s *Statistics) Percentile(p float64) (float64, bool) {
	v, ok := s.Percentiles[p]
	return v, ok
}

// Reduce computes run time statistics for samples, which are
// durations in nanoseconds. Each rank in percentiles is computed by
// linear interpolation between the two bracketing order statistics
// (Hyndman and Fan method R8).
func Reduce(samples []float64, percentiles ...float64) (*Statistics, error) {
	s, err := reduce(samples, percentiles)
	if err != nil {
		return nil, err
	}
	if !s.Degenerate() {
		s.IPS = NanosPerSecond / s.Average
		s.StdDevIPS = s.IPS * s.StdDevRatio
	}
	return s, nil
}

// ReduceMemory is like Reduce, but leaves the throughput fields zero
// since they have no meaning for memory measurements.
func ReduceMemory(samples []float64, percentiles ...float64) (*Statistics, error) {
	return reduce(samples, percentiles)
}

func reduce(samples []float64, percentiles []float64) (*Statistics, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptySampleSet
	}
	for _, p := range percentiles {
		if !(p > 0 && p <= 100) {
			return nil, fmt.Errorf("%w: %v", ErrBadPercentile, p)
		}
	}

	// Sort a copy for order statistics.
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	sample := stats.Sample{Xs: sorted, Sorted: true}

	s := &Statistics{SampleSize: n}
	s.Min, s.Max = stats.Bounds(sorted)
	// Rounding in the sum can push the mean of near-constant
	// samples just outside their bounds.
	s.Average = math.Min(math.Max(stats.Mean(samples), s.Min), s.Max)
	avg := s.Average
	variance := vec.Sum(vec.Map(func(x float64) float64 {
		return (x - avg) * (x - avg)
	}, samples)) / float64(n)
	s.StdDev = math.Sqrt(variance)

	if avg == 0 {
		s.Warnings = append(s.Warnings, ErrDegenerateAverage)
	} else {
		s.StdDevRatio = s.StdDev / avg
	}

	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	s.Mode = modeOf(samples)

	if len(percentiles) > 0 {
		s.Percentiles = make(map[float64]float64, len(percentiles))
		for _, p := range percentiles {
			s.Percentiles[p] = sample.Quantile(p / 100)
		}
	}
	return s, nil
}
