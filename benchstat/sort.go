// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import "sort"

// A SortFunc reports whether scenario a should be listed before b.
type SortFunc func(a, b *Scenario) bool

// ByAverage sorts scenarios by average run time, fastest first.
// Scenarios without run time statistics sort last.
func ByAverage(a, b *Scenario) bool {
	if a.Stats == nil || b.Stats == nil {
		return a.Stats != nil && b.Stats == nil
	}
	return a.Stats.Average < b.Stats.Average
}

// ByName sorts scenarios by name.
func ByName(a, b *Scenario) bool {
	return a.Name < b.Name
}

// SortReverse returns a SortFunc that is the reverse of the input SortFunc
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(a, b *Scenario) bool { return sortFunc(b, a) }
}

// SortScenarios sorts scenarios in place by sortFunc. The sort is
// stable, so scenarios that compare equal keep their input order.
func SortScenarios(scenarios []*Scenario, sortFunc SortFunc) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		return sortFunc(scenarios[i], scenarios[j])
	})
}
