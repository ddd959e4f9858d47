// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat computes statistics for a set of benchmark
// scenarios and orders them for presentation.
package benchstat

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"golang.org/x/benchrank/benchmath"
)

// NoInput is the Input of a scenario that was run without an
// explicit input variant.
const NoInput = "__no_input"

// A Scenario is one benchmarked implementation under one input.
type Scenario struct {
	Name  string // display label, unique within a suite
	Input string // input variant, or NoInput

	// Samples are run times in nanoseconds, one per execution.
	Samples []float64
	// MemorySamples are memory usage measurements in bytes. They
	// may be empty if memory was not measured.
	MemorySamples []float64

	// Stats and MemoryStats are nil until computed by ComputeAll.
	Stats       *benchmath.Statistics
	MemoryStats *benchmath.Statistics
}

// HasInput reports whether s was run with an explicit input.
func (s *Scenario) HasInput() bool {
	return s.Input != "" && s.Input != NoInput
}

// Options configures ComputeAll.
type Options struct {
	// Parallelism bounds the number of scenarios reduced at once.
	// If <= 0, it defaults to runtime.GOMAXPROCS(0).
	Parallelism int

	// Percentiles are the percentile ranks to compute, e.g. 99.
	Percentiles []float64

	// Logger receives debug progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// result holds the statistics computed for one scenario.
type result struct {
	stats, memory *benchmath.Statistics
}

// ComputeAll computes statistics for every scenario concurrently and
// attaches them to the scenarios. It returns scenarios in their
// original order.
//
// A quantity (run time or memory) that has no samples in any scenario
// is skipped and its statistics stay nil. Otherwise a scenario with no
// samples for that quantity fails the whole batch, and no scenario is
// modified.
func ComputeAll(scenarios []*Scenario, opts Options) ([]*Scenario, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	runTime, memory := measured(scenarios)

	results := make([]result, len(scenarios))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			start := time.Now()
			r, err := reduceScenario(s, runTime, memory, opts.Percentiles)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			results[i] = r
			logger.LogAttrs(context.Background(), slog.LevelDebug, "computed statistics",
				slog.String("scenario", s.Name),
				slog.Int("samples", len(s.Samples)),
				slog.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	attach(scenarios, results)
	return scenarios, nil
}

// ComputeSequential is like ComputeAll, but reduces scenarios one at a
// time on the calling goroutine.
func ComputeSequential(scenarios []*Scenario, percentiles ...float64) ([]*Scenario, error) {
	runTime, memory := measured(scenarios)
	results := make([]result, len(scenarios))
	for i, s := range scenarios {
		r, err := reduceScenario(s, runTime, memory, percentiles)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		results[i] = r
	}
	attach(scenarios, results)
	return scenarios, nil
}

// measured reports whether any scenario has run time or memory samples.
func measured(scenarios []*Scenario) (runTime, memory bool) {
	for _, s := range scenarios {
		runTime = runTime || len(s.Samples) > 0
		memory = memory || len(s.MemorySamples) > 0
	}
	return
}

func reduceScenario(s *Scenario, runTime, memory bool, percentiles []float64) (result, error) {
	var r result
	var err error
	if runTime {
		if r.stats, err = benchmath.Reduce(s.Samples, percentiles...); err != nil {
			return r, fmt.Errorf("run time: %w", err)
		}
	}
	if memory {
		if r.memory, err = benchmath.ReduceMemory(s.MemorySamples, percentiles...); err != nil {
			return r, fmt.Errorf("memory: %w", err)
		}
	}
	return r, nil
}

func attach(scenarios []*Scenario, results []result) {
	for i, s := range scenarios {
		s.Stats = results[i].stats
		s.MemoryStats = results[i].memory
	}
}
