// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchrank computes and ranks statistics about benchmark scenarios.
//
// Usage:
//
//	benchrank [flags] file...
//
// Each input file holds samples for a number of scenarios. Files named
// *.yaml, *.yml or *.json are sample documents:
//
//	scenarios:
//	  - name: flat_map
//	    input: Small
//	    run_times: [1200, 1300, 1250]   # nanoseconds
//	    memory: [64, 64, 64]            # bytes
//
// Any other file is read as the output of "go test -bench". Its ns/op
// and sec/op values become run time samples and its B/op values
// become memory samples. A sub-benchmark name such as Sort/small is
// scenario "Sort" with input "small". Benchmarks of the same name from
// different packages (the "pkg:" line) are separate scenarios, named
// with their package path, as in "example.com/a.Encode".
//
// For every scenario, benchrank computes the average, iterations per
// second, standard deviation, median, mode, minimum, maximum and the
// requested percentiles, and prints them as a table. Unless disabled,
// it also prints how many times slower each scenario is than a
// reference scenario. Scenarios with different inputs are reported in
// separate groups.
//
// The -config flag names a YAML file with report settings:
//
//	comparison: true
//	extended_statistics: false
//	unit_scaling: best          # best, largest, smallest or none
//	reference_job: flat_map
//	percentiles: [50, 99]
//
// Flags given on the command line override the config file.
//
// The -sort flag orders the scenarios: average (fastest first, the
// default), name, or none (input order). A leading "-", as in
// "-average", reverses the order.
//
// The -csv flag prints one CSV record per scenario instead of tables,
// with run times in nanoseconds and memory in bytes.
//
// The -chart flag writes a box plot of run times to the named .svg or
// .png file.
//
// Example
//
//	$ benchrank -extended suite.yaml
//	Name                  ips        average  deviation         median         99th %
//	flat_map         500.00 K        2.00 μs    ±40.82%        2.00 μs        3.00 μs
//	map.flatten      250.00 K        4.00 μs     ±0.00%        4.00 μs        4.00 μs
//
//	Comparison:
//	flat_map         500.00 K
//	map.flatten      250.00 K - 2.00x slower
//
//	Extended statistics:
//
//	Name                minimum        maximum    sample size                     mode
//	flat_map            1.00 μs        3.00 μs              3                     none
//	map.flatten         4.00 μs        4.00 μs              3                  4.00 μs
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"golang.org/x/benchrank/benchchart"
	"golang.org/x/benchrank/benchstat"
	"golang.org/x/benchrank/benchunit"
	"golang.org/x/benchrank/internal/samples"
	"golang.org/x/benchrank/report"
)

var exit = os.Exit // replaced during testing

func main() {
	if err := benchrank(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "benchrank: %s\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			exit(2)
		}
		exit(1)
	}
}

// usageError reports a malformed command line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type flags struct {
	config      string
	scaling     string
	comparison  bool
	extended    bool
	reference   string
	percentiles []float64
	sort        string
	parallel    int
	chart       string
	csv         bool
	verbose     bool
}

func benchrank(w, wErr io.Writer, args []string) error {
	cmd := newCommand(w, wErr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newCommand(w, wErr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "benchrank [flags] file...",
		Short: "Compute and rank statistics about benchmark scenarios",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return usageError{errors.New("no input files")}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, &f, w, wErr, args)
		},
	}
	cmd.SetOut(w)
	cmd.SetErr(wErr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "read report settings from YAML `file`")
	fs.StringVar(&f.scaling, "scaling", "best", "unit scaling `strategy`: best, largest, smallest, none")
	fs.BoolVar(&f.comparison, "comparison", true, "print the comparison table")
	fs.BoolVar(&f.extended, "extended", false, "print minimum, maximum, sample size and mode")
	fs.StringVar(&f.reference, "reference", "", "compare against scenario `name` (default first)")
	fs.Float64SliceVar(&f.percentiles, "percentile", []float64{99}, "print the `rank` percentile (repeatable)")
	fs.StringVar(&f.sort, "sort", "average", "sort by `order`: [-]average, [-]name, none")
	fs.IntVar(&f.parallel, "parallel", 0, "compute at most `n` scenarios at once (default GOMAXPROCS)")
	fs.StringVar(&f.chart, "chart", "", "write a box plot of run times to `file` (.svg or .png)")
	fs.BoolVar(&f.csv, "csv", false, "print results in CSV form")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}

var sortNames = map[string]benchstat.SortFunc{
	"average": benchstat.ByAverage,
	"name":    benchstat.ByName,
}

func parseSort(order string) (benchstat.SortFunc, error) {
	if order == "none" {
		return nil, nil
	}
	reverse := strings.HasPrefix(order, "-")
	sortFunc, ok := sortNames[strings.TrimPrefix(order, "-")]
	if !ok {
		return nil, fmt.Errorf("unknown sort order %q", order)
	}
	if reverse {
		sortFunc = benchstat.SortReverse(sortFunc)
	}
	return sortFunc, nil
}

// loadConfig reads the config file, if any, and applies the flags set
// on the command line on top of it.
func loadConfig(cmd *cobra.Command, f *flags) (report.Config, error) {
	cfg := report.DefaultConfig()
	if f.config != "" {
		data, err := os.ReadFile(f.config)
		if err != nil {
			return cfg, err
		}
		if cfg, err = report.ParseConfig(data); err != nil {
			return cfg, fmt.Errorf("%s: %w", f.config, err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("scaling") || f.config == "" {
		s, err := benchunit.ParseStrategy(f.scaling)
		if err != nil {
			return cfg, usageError{err}
		}
		cfg.UnitScaling = s
	}
	if changed("comparison") {
		cfg.Comparison = f.comparison
	}
	if changed("extended") {
		cfg.ExtendedStatistics = f.extended
	}
	if changed("reference") {
		cfg.ReferenceJob = f.reference
	}
	if changed("percentile") {
		cfg.Percentiles = f.percentiles
	}
	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

func execute(cmd *cobra.Command, f *flags, w, wErr io.Writer, files []string) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(wErr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	sortFunc, err := parseSort(f.sort)
	if err != nil {
		return usageError{err}
	}
	var chartFormat string
	if f.chart != "" {
		if chartFormat, err = benchchart.FormatFor(f.chart); err != nil {
			return usageError{err}
		}
	}

	var set samples.Set
	for _, file := range files {
		if err := set.Load(file); err != nil {
			return err
		}
		logger.Debug("loaded samples", "file", file, "scenarios", len(set.Scenarios))
	}
	for _, warn := range set.Warnings {
		logger.Warn("skipped malformed line", "reason", warn)
	}

	scenarios, err := benchstat.ComputeAll(set.Scenarios, benchstat.Options{
		Parallelism: f.parallel,
		Percentiles: cfg.Percentiles,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	for _, s := range scenarios {
		if s.Stats == nil {
			continue
		}
		for _, warn := range s.Stats.Warnings {
			logger.Warn("unreliable statistics", "scenario", s.Name, "reason", warn)
		}
	}
	if sortFunc != nil {
		benchstat.SortScenarios(scenarios, sortFunc)
	}

	if f.csv {
		err = report.WriteCSV(w, scenarios, cfg)
	} else {
		err = report.Write(w, report.RenderByInput(scenarios, cfg))
	}
	if err != nil {
		return err
	}

	if f.chart != "" {
		if err := writeChart(f.chart, chartFormat, scenarios, cfg.UnitScaling); err != nil {
			return err
		}
		logger.Debug("wrote chart", "file", f.chart)
	}
	return nil
}

func writeChart(path, format string, scenarios []*benchstat.Scenario, strategy benchunit.Strategy) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := benchchart.Write(out, scenarios, format, strategy); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
