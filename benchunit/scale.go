// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Strategy selects one display unit for a column of values.
type Strategy int

const (
	// Best picks the natural unit shared by the most values,
	// preferring the larger unit on a tie.
	Best Strategy = iota
	// Largest picks the largest natural unit of any value.
	Largest
	// Smallest picks the smallest natural unit of any value.
	Smallest
	// None always uses the base unit.
	None
)

func (s Strategy) String() string {
	switch s {
	case Best:
		return "best"
	case Largest:
		return "largest"
	case Smallest:
		return "smallest"
	case None:
		return "none"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses the name of a Strategy, as returned by
// Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "best", "":
		return Best, nil
	case "largest":
		return Largest, nil
	case "smallest":
		return Smallest, nil
	case "none":
		return None, nil
	}
	return Best, fmt.Errorf("unknown unit scaling %q (want best, largest, smallest, or none)", name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// NaturalUnit returns the largest unit of kind for which val scales
// to at least 1. Values smaller than one base unit (including 0)
// use the base unit.
func NaturalUnit(val float64, kind Kind) Unit {
	units := kind.Units()
	val = math.Abs(val)
	for i := len(units) - 1; i > 0; i-- {
		if val >= units[i].Magnitude {
			return units[i]
		}
	}
	return units[0]
}

// BestUnit returns a common Unit to apply to all of vals, chosen by
// strategy from the natural units of the individual values.
func BestUnit(vals []float64, kind Kind, strategy Strategy) Unit {
	units := kind.Units()
	if strategy == None || len(vals) == 0 {
		return units[0]
	}

	// Count natural units by index into units, which is ordered
	// from smallest to largest.
	counts := make([]int, len(units))
	for _, v := range vals {
		counts[indexOf(units, NaturalUnit(v, kind))]++
	}

	pick := -1
	switch strategy {
	default:
		panic(fmt.Sprintf("bad Strategy %v", strategy))
	case Largest:
		for i := len(counts) - 1; i >= 0 && pick < 0; i-- {
			if counts[i] > 0 {
				pick = i
			}
		}
	case Smallest:
		for i := 0; i < len(counts) && pick < 0; i++ {
			if counts[i] > 0 {
				pick = i
			}
		}
	case Best:
		// >= so a later (larger) unit wins ties.
		for i, c := range counts {
			if c > 0 && (pick < 0 || c >= counts[pick]) {
				pick = i
			}
		}
	}
	return units[pick]
}

func indexOf(units []Unit, u Unit) int {
	for i := range units {
		if units[i].Name == u.Name {
			return i
		}
	}
	panic("unit not in table: " + u.Name)
}

// Scale converts val from the base unit into u.
func (u Unit) Scale(val float64) float64 {
	return val / u.Magnitude
}

// Unscale converts val from u back into the base unit.
func (u Unit) Unscale(val float64) float64 {
	return val * u.Magnitude
}

// Format scales val into u and formats it with two digits after the
// decimal point, followed by the unit label if there is one. For
// example, a Duration of 1234567 ns in Milliseconds formats as
// "1.23 ms".
func (u Unit) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, u.Scale(val), 'f', 2, 64)
	if u.Label != "" {
		buf = append(buf, ' ')
		buf = append(buf, u.Label...)
	}
	return string(buf)
}
