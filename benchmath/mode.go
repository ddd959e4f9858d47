// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "fmt"

// A ModeKind says which form a Mode takes.
type ModeKind int

const (
	// NoMode means no sample value occurs more than once.
	NoMode ModeKind = iota
	// SingleMode means exactly one value occurs most often.
	SingleMode
	// TiedMode means several values share the highest count.
	TiedMode
)

func (k ModeKind) String() string {
	switch k {
	case NoMode:
		return "NoMode"
	case SingleMode:
		return "SingleMode"
	case TiedMode:
		return "TiedMode"
	}
	return fmt.Sprintf("ModeKind(%d)", int(k))
}

// A Mode is the most frequent value or values of a sample.
//
// Values is empty for NoMode, has one element for SingleMode, and
// lists the tied values in the order they were first seen in the
// unsorted samples for TiedMode.
type Mode struct {
	Kind   ModeKind
	Values []float64
}

// Single returns the mode value if m is a SingleMode.
func (m Mode) Single() (float64, bool) {
	if m.Kind != SingleMode {
		return 0, false
	}
	return m.Values[0], true
}

func modeOf(samples []float64) Mode {
	counts := make(map[float64]int, len(samples))
	var order []float64
	best := 0
	for _, x := range samples {
		c := counts[x]
		if c == 0 {
			order = append(order, x)
		}
		c++
		counts[x] = c
		if c > best {
			best = c
		}
	}
	if best < 2 {
		return Mode{Kind: NoMode}
	}

	var vals []float64
	for _, x := range order {
		if counts[x] == best {
			vals = append(vals, x)
		}
	}
	if len(vals) == 1 {
		return Mode{Kind: SingleMode, Values: vals}
	}
	return Mode{Kind: TiedMode, Values: vals}
}
