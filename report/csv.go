// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/benchrank/benchmath"
	"golang.org/x/benchrank/benchstat"
)

// WriteCSV writes one CSV record per scenario with statistics to w,
// after a header record. Values are unscaled: run times in
// nanoseconds, memory in bytes. Cells that are undefined, such as the
// ips of a zero average or the statistics of an unmeasured quantity,
// are empty.
//
// The comparison columns are relative to the same reference scenario
// Render uses.
func WriteCSV(w io.Writer, scenarios []*benchstat.Scenario, cfg Config) error {
	tab := [][]string{csvHeader(cfg)}

	runTime := withStats(scenarios, func(s *benchstat.Scenario) *benchmath.Statistics { return s.Stats })
	var base *benchmath.Statistics
	if len(runTime) > 0 {
		base = runTime[reference(runTime, cfg.ReferenceJob)].stats
	}
	memory := withStats(scenarios, func(s *benchstat.Scenario) *benchmath.Statistics { return s.MemoryStats })
	var memBase *benchmath.Statistics
	if len(memory) > 0 {
		memBase = memory[reference(memory, cfg.ReferenceJob)].stats
	}

	for _, s := range scenarios {
		if s.Stats == nil && s.MemoryStats == nil {
			continue
		}
		input := s.Input
		if !s.HasInput() {
			input = ""
		}
		rec := []string{s.Name, input}

		if st := s.Stats; st != nil {
			ips, dev, slower := "", "", ""
			if !st.Degenerate() {
				ips = strof(st.IPS)
				dev = strof(st.StdDevRatio)
				if base != nil && !base.Degenerate() {
					slower = strof(base.IPS / st.IPS)
				}
			}
			rec = append(rec, ips, strof(st.Average), strof(st.StdDev), dev, strof(st.Median))
			for _, p := range cfg.Percentiles {
				v, ok := st.Percentile(p)
				if ok {
					rec = append(rec, strof(v))
				} else {
					rec = append(rec, "")
				}
			}
			rec = append(rec, strof(st.Min), strof(st.Max), strconv.Itoa(st.SampleSize), modeof(st.Mode), slower)
		} else {
			rec = append(rec, make([]string, 10+len(cfg.Percentiles))...)
		}

		if st := s.MemoryStats; st != nil {
			usage := ""
			if memBase != nil && memBase.Average != 0 {
				usage = strof(st.Average / memBase.Average)
			}
			rec = append(rec, strof(st.Average), strof(st.StdDev), strof(st.Median), usage)
		} else {
			rec = append(rec, "", "", "", "")
		}
		tab = append(tab, rec)
	}

	csvw := csv.NewWriter(w)
	if err := csvw.WriteAll(tab); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

func csvHeader(cfg Config) []string {
	hdr := []string{"name", "input", "ips", "average_ns", "stddev_ns", "deviation", "median_ns"}
	for _, p := range cfg.Percentiles {
		hdr = append(hdr, "p"+strconv.FormatFloat(p, 'f', -1, 64)+"_ns")
	}
	return append(hdr, "min_ns", "max_ns", "sample_size", "mode_ns", "slower",
		"memory_average_b", "memory_stddev_b", "memory_median_b", "memory_usage")
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// modeof joins the mode values with ";" so that a tied mode stays in
// one cell.
func modeof(m benchmath.Mode) string {
	vals := make([]string, len(m.Values))
	for i, v := range m.Values {
		vals[i] = strof(v)
	}
	return strings.Join(vals, ";")
}
