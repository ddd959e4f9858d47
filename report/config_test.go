// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/benchrank/benchunit"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
comparison: false
extended_statistics: true
unit_scaling: smallest
reference_job: flat_map
percentiles: [50, 99.9]
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Comparison:         false,
		ExtendedStatistics: true,
		UnitScaling:        benchunit.Smallest,
		ReferenceJob:       "flat_map",
		Percentiles:        []float64{50, 99.9},
	}, cfg)

	// JSON is a subset of YAML.
	cfg, err = ParseConfig([]byte(`{"unit_scaling": "none"}`))
	require.NoError(t, err)
	assert.Equal(t, benchunit.None, cfg.UnitScaling)
	assert.True(t, cfg.Comparison)
}

func TestParseConfigErrors(t *testing.T) {
	for _, doc := range []string{
		"unit_scaling: huge",
		"percentiles: [0]",
		"percentiles: [101]",
		"comparison: [",
	} {
		_, err := ParseConfig([]byte(doc))
		assert.Error(t, err, doc)
	}
}
