// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/benchrank/benchstat"
)

func readCSV(t *testing.T, ss []*benchstat.Scenario, cfg Config) []map[string]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ss, cfg))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	hdr := recs[0]
	var out []map[string]string
	for _, rec := range recs[1:] {
		require.Len(t, rec, len(hdr))
		m := make(map[string]string)
		for i, h := range hdr {
			m[h] = rec[i]
		}
		out = append(out, m)
	}
	return out
}

func TestWriteCSV(t *testing.T) {
	recs := readCSV(t, twoScenarios(t), DefaultConfig())
	require.Len(t, recs, 2)

	fm, mf := recs[0], recs[1]
	assert.Equal(t, "flat_map", fm["name"])
	assert.Equal(t, "", fm["input"])
	assert.Equal(t, "500000", fm["ips"])
	assert.Equal(t, "2000", fm["average_ns"])
	assert.Equal(t, "2000", fm["median_ns"])
	assert.Equal(t, "3000", fm["p99_ns"])
	assert.Equal(t, "1000", fm["min_ns"])
	assert.Equal(t, "3000", fm["max_ns"])
	assert.Equal(t, "3", fm["sample_size"])
	assert.Equal(t, "", fm["mode_ns"])
	assert.Equal(t, "1", fm["slower"])
	assert.Equal(t, "", fm["memory_average_b"])

	assert.Equal(t, "250000", mf["ips"])
	assert.Equal(t, "0", mf["deviation"])
	assert.Equal(t, "4000", mf["mode_ns"])
	assert.Equal(t, "2", mf["slower"])
}

func TestWriteCSVMemory(t *testing.T) {
	ss := computed(t,
		&benchstat.Scenario{Name: "a", Input: "Small", Samples: []float64{10}, MemorySamples: []float64{64, 64}},
		&benchstat.Scenario{Name: "b", Input: "Small", Samples: []float64{20}, MemorySamples: []float64{32, 32}},
	)
	cfg := DefaultConfig()
	cfg.ReferenceJob = "b"
	recs := readCSV(t, ss, cfg)
	require.Len(t, recs, 2)
	assert.Equal(t, "Small", recs[0]["input"])
	assert.Equal(t, "64", recs[0]["memory_average_b"])
	assert.Equal(t, "2", recs[0]["memory_usage"])
	assert.Equal(t, "1", recs[1]["memory_usage"])
	assert.Equal(t, "0.5", recs[0]["slower"])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, DefaultConfig()))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
