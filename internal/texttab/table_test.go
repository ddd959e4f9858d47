// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.lpad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc")
	check("abc", alignRight, 10, "       abc")
	check("☃", alignRight, 4, "   ☃")
	check("1.00 μs", alignRight, 9, "  1.00 μs")
	check("toolong", alignRight, 3, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Basic cell padding. Also checks that we don't print
	// unnecessary spaces at the ends of lines.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	// Cell alignment.
	tab.Row().Cell("a").Cell("b").Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a   b     c\nxxx xxx xxx\n")

	// Empty cells take no margin.
	tab.Row().Cell("a").Cell("").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a   c\nd e f\n")

	// Missing cells at the end.
	tab.Row().Cell("a")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a\nd e f\n")

	// Blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row()
	tab.Row().Cell("b")
	check("a\n\n\nb\n")

	// Fixed widths.
	tab.SetWidth(0, 6).SetWidth(1, 5)
	tab.Row().Cell("name").Cell("x", Right)
	tab.Row().Cell("n").Cell("1.5", Right)
	check("name      x\nn       1.5\n")

	// Cells wider than a fixed width widen the column.
	tab.SetWidth(1, 3)
	tab.Row().Cell("a").Cell("wide", Right)
	tab.Row().Cell("b").Cell("x", Right)
	check("a wide\nb    x\n")

	// Empty table.
	check("")
}

func TestLines(t *testing.T) {
	var tab Table
	tab.SetWidth(0, 8)
	tab.Row().Cell("Name").Cell("ips", Right)
	tab.Row().Cell("fast").Cell("10.00 K", Right)
	tab.Row()

	got := tab.Lines()
	want := []string{"Name         ips", "fast     10.00 K"}
	if len(got) != len(want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: want %q, got %q", i, want[i], got[i])
		}
	}
}
