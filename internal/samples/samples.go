// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samples reads raw benchmark measurements into scenarios.
//
// Two formats are supported: the text output of "go test -bench", and
// YAML (or JSON) documents of the form
//
//	scenarios:
//	  - name: flat_map
//	    input: small        # optional
//	    run_times: [...]    # nanoseconds
//	    memory: [...]       # bytes, optional
package samples

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/perf/benchfmt"
	perfunit "golang.org/x/perf/benchunit"
	"gopkg.in/yaml.v3"

	"golang.org/x/benchrank/benchstat"
)

// ErrNegativeSample is returned for a measurement below zero.
var ErrNegativeSample = errors.New("negative sample")

// A Set accumulates scenarios in order of first appearance.
type Set struct {
	Scenarios []*benchstat.Scenario

	// Warnings holds malformed benchmark lines that were skipped.
	Warnings []error

	keys  []key // keys[i] identifies Scenarios[i]
	index map[key]*benchstat.Scenario
}

// A key identifies a scenario. Benchmarks with the same name in
// different packages are different scenarios.
type key struct {
	pkg, name, input string
}

// scenario returns the scenario for k, creating a new one if needed.
func (s *Set) scenario(k key) *benchstat.Scenario {
	if k.input == "" {
		k.input = benchstat.NoInput
	}
	if s.index == nil {
		s.index = make(map[key]*benchstat.Scenario)
	}
	if sc, ok := s.index[k]; ok {
		return sc
	}
	sc := &benchstat.Scenario{Name: k.name, Input: k.input}
	s.index[k] = sc
	s.keys = append(s.keys, k)
	s.Scenarios = append(s.Scenarios, sc)
	return sc
}

// qualifyNames prefixes the package path to the name of every
// scenario whose name is shared by benchmarks from several packages.
func (s *Set) qualifyNames() {
	pkgs := make(map[string]map[string]bool)
	for _, k := range s.keys {
		if pkgs[k.name] == nil {
			pkgs[k.name] = make(map[string]bool)
		}
		pkgs[k.name][k.pkg] = true
	}
	for i, k := range s.keys {
		if len(pkgs[k.name]) > 1 && k.pkg != "" {
			s.Scenarios[i].Name = k.pkg + "." + k.name
		}
	}
}

// Load adds the measurements in the named file to s. Files ending in
// .yaml, .yml or .json are read as documents; anything else as
// benchmark text.
func (s *Set) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		if err := s.AddDocument(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return s.addBench(f, path)
}

// Tidied units of run time and memory samples, and the tidied value of
// one nanosecond or one byte.
var (
	timeUnit, timeFactor     = tidied("ns/op")
	memoryUnit, memoryFactor = tidied("B/op")
)

func tidied(unit string) (string, float64) {
	v, u := perfunit.Tidy(1, unit)
	return u, v
}

// AddBench adds the results of "go test -bench" output read from r.
//
// A benchmark named BenchmarkSort/small-8 becomes scenario "Sort" with
// input "small". Run time values (ns/op, sec/op) are run time samples
// and B/op values are memory samples; other units are ignored.
// Benchmarks are told apart by their "pkg" configuration as well as
// their name. A name used in several packages is qualified with the
// package path, as in "example.com/a.Encode".
//
// Malformed lines are skipped and recorded in s.Warnings.
func (s *Set) AddBench(r io.Reader) error {
	return s.addBench(r, "")
}

func (s *Set) addBench(r io.Reader, fileName string) error {
	br := benchfmt.NewReader(r, fileName)
	for br.Scan() {
		switch rec := br.Result().(type) {
		case *benchfmt.SyntaxError:
			s.Warnings = append(s.Warnings, rec)
		case *benchfmt.Result:
			if err := s.addResult(rec); err != nil {
				return err
			}
		}
	}
	if err := br.Err(); err != nil {
		return err
	}
	s.qualifyNames()
	return nil
}

func (s *Set) addResult(res *benchfmt.Result) error {
	if res.Iters == 0 {
		return nil
	}
	base, parts := res.Name.Parts()
	var sub []string
	for _, p := range parts {
		// Drop the -GOMAXPROCS part.
		if len(p) > 0 && p[0] == '/' {
			sub = append(sub, string(p[1:]))
		}
	}
	k := key{pkg: res.GetConfig("pkg"), name: string(base), input: strings.Join(sub, "/")}

	var sc *benchstat.Scenario
	for _, v := range res.Values {
		val, memory, ok := sampleOf(v)
		if !ok {
			continue
		}
		if val < 0 || math.IsNaN(val) {
			file, line := res.Pos()
			return fmt.Errorf("%s:%d: %w %v", file, line, ErrNegativeSample, val)
		}
		if sc == nil {
			sc = s.scenario(k)
		}
		if memory {
			sc.MemorySamples = append(sc.MemorySamples, val)
		} else {
			sc.Samples = append(sc.Samples, val)
		}
	}
	return nil
}

// sampleOf converts a tidied benchmark value into nanoseconds or
// bytes. It reports whether v is a memory sample and whether it is a
// sample at all.
func sampleOf(v benchfmt.Value) (val float64, memory, ok bool) {
	switch v.Unit {
	case timeUnit:
		if v.OrigUnit == "ns/op" {
			// Avoid a round trip through seconds.
			return v.OrigValue, false, true
		}
		return v.Value / timeFactor, false, true
	case memoryUnit:
		return v.Value / memoryFactor, true, true
	}
	return 0, false, false
}

type document struct {
	Scenarios []struct {
		Name     string    `yaml:"name"`
		Input    string    `yaml:"input"`
		RunTimes []float64 `yaml:"run_times"`
		Memory   []float64 `yaml:"memory"`
	} `yaml:"scenarios"`
}

// AddDocument adds the scenarios of a YAML or JSON document.
func (s *Set) AddDocument(data []byte) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for i, d := range doc.Scenarios {
		if d.Name == "" {
			return fmt.Errorf("scenario %d: missing name", i)
		}
		for _, v := range append(append([]float64(nil), d.RunTimes...), d.Memory...) {
			if v < 0 || math.IsNaN(v) {
				return fmt.Errorf("scenario %q: %w %v", d.Name, ErrNegativeSample, v)
			}
		}
		sc := s.scenario(key{name: d.Name, input: d.Input})
		sc.Samples = append(sc.Samples, d.RunTimes...)
		sc.MemorySamples = append(sc.MemorySamples, d.Memory...)
	}
	return nil
}
