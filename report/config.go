// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"golang.org/x/benchrank/benchunit"
)

// Config selects what Render emits. The zero Config is not useful;
// start from DefaultConfig.
type Config struct {
	// Comparison enables the table comparing every scenario to a
	// reference scenario.
	Comparison bool `yaml:"comparison"`

	// ExtendedStatistics enables the minimum/maximum/sample
	// size/mode table.
	ExtendedStatistics bool `yaml:"extended_statistics"`

	// UnitScaling picks the display unit of each column.
	UnitScaling benchunit.Strategy `yaml:"unit_scaling"`

	// ReferenceJob names the comparison baseline. If empty or not
	// found, the first scenario is the baseline.
	ReferenceJob string `yaml:"reference_job"`

	// Percentiles are the percentile ranks shown as columns, in
	// order. Statistics must have been computed for these ranks.
	Percentiles []float64 `yaml:"percentiles"`
}

// DefaultConfig returns the default configuration: comparison on,
// extended statistics off, best unit scaling and the 99th percentile.
func DefaultConfig() Config {
	return Config{
		Comparison:  true,
		UnitScaling: benchunit.Best,
		Percentiles: []float64{99},
	}
}

// ParseConfig decodes a YAML (or JSON) configuration document.
// Fields missing from data keep their DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing report config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that cfg's percentile ranks are in (0, 100].
func (cfg Config) Validate() error {
	for _, p := range cfg.Percentiles {
		if !(p > 0 && p <= 100) {
			return fmt.Errorf("percentile %v out of range (0, 100]", p)
		}
	}
	return nil
}
