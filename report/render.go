// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders benchmark scenario statistics as aligned
// text tables.
//
// A report has up to four tables: run time, comparison against a
// reference scenario, extended statistics, and memory usage. All
// tables of one report share the width of the name column and the
// display unit of each quantity.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/benchrank/benchmath"
	"golang.org/x/benchrank/benchstat"
	"golang.org/x/benchrank/benchunit"
	"golang.org/x/benchrank/internal/texttab"
)

// Column widths, including the one-space left margin.
const (
	nameMargin      = 1
	ipsWidth        = 13
	averageWidth    = 15
	deviationWidth  = 11
	medianWidth     = 15
	percentileWidth = 15
	minimumWidth    = 15
	maximumWidth    = 15
	sampleSizeWidth = 15
	modeWidth       = 25
)

// notAvailable fills cells whose value is undefined, such as the
// deviation of a zero average.
const notAvailable = "n/a"

// units holds the display unit of each quantity in one report.
type units struct {
	runTime, ips, memory benchunit.Unit
}

// Render formats the statistics of scenarios, in the given order, and
// returns the report one line at a time. Scenarios whose statistics
// have not been computed are left out of the tables that need them.
func Render(scenarios []*benchstat.Scenario, cfg Config) []string {
	runTime := withStats(scenarios, func(s *benchstat.Scenario) *benchmath.Statistics { return s.Stats })
	memory := withStats(scenarios, func(s *benchstat.Scenario) *benchmath.Statistics { return s.MemoryStats })

	u := chooseUnits(runTime, memory, cfg.UnitScaling)
	nameWidth := nameColumnWidth(scenarios)

	var sections [][]string
	if len(runTime) > 0 {
		sections = append(sections, runTimeTable(runTime, u, nameWidth, cfg))
		if cfg.Comparison && len(runTime) > 1 {
			sections = append(sections, comparisonTable(runTime, u, nameWidth, cfg.ReferenceJob))
		}
		if cfg.ExtendedStatistics {
			sections = append(sections, extendedTable(runTime, u, nameWidth))
		}
	}
	if len(memory) > 0 {
		sections = append(sections, memoryTable(memory, u, nameWidth, cfg))
		if cfg.Comparison && len(memory) > 1 {
			sections = append(sections, memoryComparisonTable(memory, u, nameWidth, cfg.ReferenceJob))
		}
	}

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s...)
	}
	return lines
}

// RenderByInput groups scenarios by input, in order of first
// appearance, and renders each group as its own report under a
// "##### With input ... #####" heading. If no scenario has an
// explicit input, it is the same as Render.
func RenderByInput(scenarios []*benchstat.Scenario, cfg Config) []string {
	hasInput := false
	for _, s := range scenarios {
		hasInput = hasInput || s.HasInput()
	}
	if !hasInput {
		return Render(scenarios, cfg)
	}

	var order []string
	groups := make(map[string][]*benchstat.Scenario)
	for _, s := range scenarios {
		if _, ok := groups[s.Input]; !ok {
			order = append(order, s.Input)
		}
		groups[s.Input] = append(groups[s.Input], s)
	}

	var lines []string
	for i, input := range order {
		if i > 0 {
			lines = append(lines, "")
		}
		label := input
		if label == benchstat.NoInput || label == "" {
			label = "none"
		}
		lines = append(lines, fmt.Sprintf("##### With input %s #####", label))
		lines = append(lines, Render(groups[input], cfg)...)
	}
	return lines
}

// Write prints lines to w, one per line.
func Write(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type row struct {
	name  string
	stats *benchmath.Statistics
}

func withStats(scenarios []*benchstat.Scenario, get func(*benchstat.Scenario) *benchmath.Statistics) []row {
	var rows []row
	for _, s := range scenarios {
		if st := get(s); st != nil {
			rows = append(rows, row{s.Name, st})
		}
	}
	return rows
}

func chooseUnits(runTime, memory []row, strategy benchunit.Strategy) units {
	var averages, ips, mem []float64
	for _, r := range runTime {
		averages = append(averages, r.stats.Average)
		if !r.stats.Degenerate() {
			ips = append(ips, r.stats.IPS)
		}
	}
	for _, r := range memory {
		mem = append(mem, r.stats.Average)
	}
	return units{
		runTime: benchunit.BestUnit(averages, benchunit.Duration, strategy),
		ips:     benchunit.BestUnit(ips, benchunit.Count, strategy),
		memory:  benchunit.BestUnit(mem, benchunit.Memory, strategy),
	}
}

func nameColumnWidth(scenarios []*benchstat.Scenario) int {
	w := utf8.RuneCountInString("Name")
	for _, s := range scenarios {
		if n := utf8.RuneCountInString(s.Name); n > w {
			w = n
		}
	}
	return w + nameMargin
}

func percentileLabel(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "th %"
}

func formatDeviation(s *benchmath.Statistics) string {
	if s.Degenerate() {
		return notAvailable
	}
	return fmt.Sprintf("±%.2f%%", s.StdDevRatio*100)
}

func formatPercentile(s *benchmath.Statistics, p float64, u benchunit.Unit) string {
	v, ok := s.Percentile(p)
	if !ok {
		return notAvailable
	}
	return u.Format(v)
}

func formatMode(m benchmath.Mode, u benchunit.Unit) string {
	switch m.Kind {
	case benchmath.SingleMode, benchmath.TiedMode:
		vals := make([]string, len(m.Values))
		for i, v := range m.Values {
			vals[i] = u.Format(v)
		}
		return strings.Join(vals, ", ")
	}
	return "none"
}

// newTable returns a table with the name column width set, followed
// by the given widths.
func newTable(nameWidth int, widths ...int) *texttab.Table {
	t := new(texttab.Table)
	t.SetWidth(0, nameWidth)
	for i, w := range widths {
		t.SetWidth(i+1, w)
	}
	return t
}

func runTimeTable(rows []row, u units, nameWidth int, cfg Config) []string {
	widths := []int{ipsWidth, averageWidth, deviationWidth, medianWidth}
	for range cfg.Percentiles {
		widths = append(widths, percentileWidth)
	}
	t := newTable(nameWidth, widths...)

	t.Row().Cell("Name").Cell("ips", texttab.Right).Cell("average", texttab.Right).
		Cell("deviation", texttab.Right).Cell("median", texttab.Right)
	for _, p := range cfg.Percentiles {
		t.Cell(percentileLabel(p), texttab.Right)
	}

	for _, r := range rows {
		ips := notAvailable
		if !r.stats.Degenerate() {
			ips = u.ips.Format(r.stats.IPS)
		}
		t.Row().Cell(r.name).
			Cell(ips, texttab.Right).
			Cell(u.runTime.Format(r.stats.Average), texttab.Right).
			Cell(formatDeviation(r.stats), texttab.Right).
			Cell(u.runTime.Format(r.stats.Median), texttab.Right)
		for _, p := range cfg.Percentiles {
			t.Cell(formatPercentile(r.stats, p, u.runTime), texttab.Right)
		}
	}
	return t.Lines()
}

// reference returns the index of the row named job, or 0 if there is
// no such row.
func reference(rows []row, job string) int {
	if job == "" {
		return 0
	}
	for i, r := range rows {
		if r.name == job {
			return i
		}
	}
	return 0
}

// others returns rows without the row at index ref, keeping order.
func others(rows []row, ref int) []row {
	out := make([]row, 0, len(rows)-1)
	out = append(out, rows[:ref]...)
	return append(out, rows[ref+1:]...)
}

func comparisonTable(rows []row, u units, nameWidth int, job string) []string {
	ref := reference(rows, job)
	base := rows[ref].stats

	formatIPS := func(s *benchmath.Statistics) string {
		if s.Degenerate() {
			return notAvailable
		}
		return u.ips.Format(s.IPS)
	}

	t := newTable(nameWidth, ipsWidth)
	t.Row().Cell(rows[ref].name).Cell(formatIPS(base), texttab.Right)
	for _, r := range others(rows, ref) {
		slower := notAvailable
		if !base.Degenerate() && !r.stats.Degenerate() {
			slower = fmt.Sprintf("%.2fx slower", base.IPS/r.stats.IPS)
		}
		t.Row().Cell(r.name).Cell(formatIPS(r.stats), texttab.Right).Cell("- " + slower)
	}
	return append([]string{"Comparison:"}, t.Lines()...)
}

func extendedTable(rows []row, u units, nameWidth int) []string {
	t := newTable(nameWidth, minimumWidth, maximumWidth, sampleSizeWidth, modeWidth)
	t.Row().Cell("Name").Cell("minimum", texttab.Right).Cell("maximum", texttab.Right).
		Cell("sample size", texttab.Right).Cell("mode", texttab.Right)
	for _, r := range rows {
		t.Row().Cell(r.name).
			Cell(u.runTime.Format(r.stats.Min), texttab.Right).
			Cell(u.runTime.Format(r.stats.Max), texttab.Right).
			Cell(strconv.Itoa(r.stats.SampleSize), texttab.Right).
			Cell(formatMode(r.stats.Mode, u.runTime), texttab.Right)
	}
	return append([]string{"Extended statistics:", ""}, t.Lines()...)
}

func memoryTable(rows []row, u units, nameWidth int, cfg Config) []string {
	widths := []int{averageWidth, deviationWidth, medianWidth}
	for range cfg.Percentiles {
		widths = append(widths, percentileWidth)
	}
	t := newTable(nameWidth, widths...)

	t.Row().Cell("Name").Cell("average", texttab.Right).
		Cell("deviation", texttab.Right).Cell("median", texttab.Right)
	for _, p := range cfg.Percentiles {
		t.Cell(percentileLabel(p), texttab.Right)
	}
	for _, r := range rows {
		t.Row().Cell(r.name).
			Cell(u.memory.Format(r.stats.Average), texttab.Right).
			Cell(formatDeviation(r.stats), texttab.Right).
			Cell(u.memory.Format(r.stats.Median), texttab.Right)
		for _, p := range cfg.Percentiles {
			t.Cell(formatPercentile(r.stats, p, u.memory), texttab.Right)
		}
	}
	return append([]string{"Memory usage statistics:", ""}, t.Lines()...)
}

func memoryComparisonTable(rows []row, u units, nameWidth int, job string) []string {
	ref := reference(rows, job)
	base := rows[ref].stats

	t := newTable(nameWidth, averageWidth)
	t.Row().Cell(rows[ref].name).Cell(u.memory.Format(base.Average), texttab.Right)
	for _, r := range others(rows, ref) {
		usage := notAvailable
		if base.Average != 0 {
			usage = fmt.Sprintf("%.2fx memory usage", r.stats.Average/base.Average)
		}
		t.Row().Cell(r.name).Cell(u.memory.Format(r.stats.Average), texttab.Right).Cell("- " + usage)
	}
	return append([]string{"Comparison:"}, t.Lines()...)
}
