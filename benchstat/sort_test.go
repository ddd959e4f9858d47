// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/benchrank/benchmath"
)

func withAverage(name string, avg float64) *Scenario {
	return &Scenario{Name: name, Stats: &benchmath.Statistics{Average: avg}}
}

func names(scenarios []*Scenario) []string {
	var out []string
	for _, s := range scenarios {
		out = append(out, s.Name)
	}
	return out
}

func TestSortByAverage(t *testing.T) {
	ss := []*Scenario{withAverage("a", 200), withAverage("b", 100), withAverage("c", 400)}
	SortScenarios(ss, ByAverage)
	assert.Equal(t, []string{"b", "a", "c"}, names(ss))

	SortScenarios(ss, SortReverse(ByAverage))
	assert.Equal(t, []string{"c", "a", "b"}, names(ss))
}

func TestSortStable(t *testing.T) {
	ss := []*Scenario{
		withAverage("x", 100),
		{Name: "unmeasured"},
		withAverage("y", 50),
		withAverage("z", 100),
		withAverage("w", 100),
	}
	SortScenarios(ss, ByAverage)
	assert.Equal(t, []string{"y", "x", "z", "w", "unmeasured"}, names(ss))
}

func TestSortByName(t *testing.T) {
	ss := []*Scenario{{Name: "map"}, {Name: "flat_map"}, {Name: "reduce"}}
	SortScenarios(ss, ByName)
	assert.Equal(t, []string{"flat_map", "map", "reduce"}, names(ss))
}
