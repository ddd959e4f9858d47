// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit picks display units for benchmark quantities and
// formats numbers in those units.
package benchunit

import "fmt"

// A Kind is a family of units that measure the same quantity.
type Kind int

const (
	// Duration values are in nanoseconds.
	Duration Kind = iota
	// Count values are plain counts, such as iterations per second.
	// Count units use decimal prefixes ("K", "M", "B").
	Count
	// Memory values are in bytes. Memory units are powers of 1024.
	Memory
)

func (k Kind) String() string {
	switch k {
	case Duration:
		return "Duration"
	case Count:
		return "Count"
	case Memory:
		return "Memory"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Unit is a display unit for one Kind of value.
type Unit struct {
	Name      string
	Magnitude float64 // base units per one of this unit
	Label     string  // printed after a formatted value
	Kind      Kind
}

func (u Unit) String() string {
	return u.Name
}

var (
	Nanosecond  = Unit{"nanosecond", 1, "ns", Duration}
	Microsecond = Unit{"microsecond", 1e3, "μs", Duration}
	Millisecond = Unit{"millisecond", 1e6, "ms", Duration}
	Second      = Unit{"second", 1e9, "s", Duration}
	Minute      = Unit{"minute", 60e9, "min", Duration}
	Hour        = Unit{"hour", 3600e9, "h", Duration}

	One      = Unit{"one", 1, "", Count}
	Thousand = Unit{"thousand", 1e3, "K", Count}
	Million  = Unit{"million", 1e6, "M", Count}
	Billion  = Unit{"billion", 1e9, "B", Count}

	Byte     = Unit{"byte", 1, "B", Memory}
	Kilobyte = Unit{"kilobyte", 1 << 10, "KB", Memory}
	Megabyte = Unit{"megabyte", 1 << 20, "MB", Memory}
	Gigabyte = Unit{"gigabyte", 1 << 30, "GB", Memory}
	Terabyte = Unit{"terabyte", 1 << 40, "TB", Memory}
)

var (
	durationUnits = []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour}
	countUnits    = []Unit{One, Thousand, Million, Billion}
	memoryUnits   = []Unit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte}
)

// Units returns the units of kind from smallest to largest. The first
// is the base unit.
func (k Kind) Units() []Unit {
	switch k {
	case Duration:
		return durationUnits
	case Count:
		return countUnits
	case Memory:
		return memoryUnits
	}
	panic(fmt.Sprintf("bad Kind %v", k))
}

// Base returns the base unit of kind.
func (k Kind) Base() Unit {
	return k.Units()[0]
}
