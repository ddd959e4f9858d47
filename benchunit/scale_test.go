// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestNaturalUnit(t *testing.T) {
	test := func(val float64, kind Kind, want Unit) {
		t.Helper()
		if got := NaturalUnit(val, kind); got != want {
			t.Errorf("NaturalUnit(%v, %v) = %v, want %v", val, kind, got, want)
		}
	}

	test(0, Duration, Nanosecond)
	test(0.5, Duration, Nanosecond)
	test(999, Duration, Nanosecond)
	test(1000, Duration, Microsecond)
	test(math.Nextafter(1e6, 0), Duration, Microsecond)
	test(1e6, Duration, Millisecond)
	test(1.5e9, Duration, Second)
	test(90e9, Duration, Minute)
	test(7200e9, Duration, Hour)

	test(12, Count, One)
	test(1500, Count, Thousand)
	test(2.5e6, Count, Million)
	test(3e12, Count, Billion)

	test(1023, Memory, Byte)
	test(1024, Memory, Kilobyte)
	test(5<<20, Memory, Megabyte)
	test(1<<50, Memory, Terabyte)
}

func TestBestUnit(t *testing.T) {
	test := func(vals []float64, kind Kind, s Strategy, want Unit) {
		t.Helper()
		if got := BestUnit(vals, kind, s); got != want {
			t.Errorf("BestUnit(%v, %v, %v) = %v, want %v", vals, kind, s, got, want)
		}
	}

	mixed := []float64{1e3, 2e3, 5e6}
	test(mixed, Duration, Best, Microsecond)
	test(mixed, Duration, Largest, Millisecond)
	test(mixed, Duration, Smallest, Microsecond)
	test(mixed, Duration, None, Nanosecond)

	// Ties prefer the larger unit.
	test([]float64{500, 2e3}, Duration, Best, Microsecond)
	test([]float64{2e6, 2e3, 3e6, 3e3}, Duration, Best, Millisecond)

	test(nil, Duration, Best, Nanosecond)
	test(nil, Count, Largest, One)
	test([]float64{989.8, 647.35}, Count, Best, One)
	test([]float64{2340, 12, 5e6}, Count, Smallest, One)
	test([]float64{2048, 4096, 100}, Memory, Best, Kilobyte)
}

func TestFormat(t *testing.T) {
	test := func(u Unit, val float64, want string) {
		t.Helper()
		if got := u.Format(val); got != want {
			t.Errorf("%v.Format(%v) = %q, want %q", u, val, got, want)
		}
	}

	test(Millisecond, 1234567, "1.23 ms")
	test(Microsecond, 427780, "427.78 μs")
	test(Nanosecond, 12, "12.00 ns")
	test(Second, 2.5e9, "2.50 s")
	test(One, 989.8, "989.80")
	test(Thousand, 2340, "2.34 K")
	test(Kilobyte, 1536, "1.50 KB")
	test(Byte, 0, "0.00 B")
}

func TestScaleRoundTrip(t *testing.T) {
	vals := []float64{0, 1, 123.456, 987654321, 1.5e13}
	for _, k := range []Kind{Duration, Count, Memory} {
		for _, u := range k.Units() {
			for _, v := range vals {
				got := u.Unscale(u.Scale(v))
				if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("%v: round trip of %v gave %v", u, v, got)
				}
			}
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{Best, Largest, Smallest, None} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseStrategy(""); err != nil || got != Best {
		t.Errorf("empty strategy: got %v, %v; want best", got, err)
	}
	if _, err := ParseStrategy("biggest"); err == nil {
		t.Errorf("ParseStrategy(biggest) should fail")
	}

	var s Strategy
	if err := s.UnmarshalText([]byte("Largest")); err != nil || s != Largest {
		t.Errorf("UnmarshalText(Largest) = %v, %v", s, err)
	}
}
