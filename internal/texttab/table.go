// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily
// chain them to build up many cells at once.
type Table struct {
	cells []textCell
	cols  int

	// widths holds the minimum width of each column, including
	// its left margin.
	widths []int

	curRow, curCol int
}

type textCell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
}

// A CellOption changes how a cell is laid out.
type CellOption func(c *textCell)

// Right aligns a cell to the right edge of its column. Cells are
// left-aligned by default.
var Right CellOption = func(c *textCell) { c.alignment = alignRight }

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) lpad(s string, w int) string {
	if a == alignRight {
		return fmt.Sprintf("%*s", w, s)
	}
	return s
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Cell adds a cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	lMargin := " "
	if t.curCol == 0 || len(value) == 0 {
		// For the left-most column or empty cells, we default
		// to no left margin.
		lMargin = ""
	}
	t.cells = append(t.cells, textCell{t.curRow, t.curCol, value, lMargin, alignLeft})
	for _, o := range opts {
		o(&t.cells[len(t.cells)-1])
	}

	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// SetWidth fixes the width of column col, including its left margin.
// Cells wider than w still widen the column.
func (t *Table) SetWidth(col, w int) *Table {
	for len(t.widths) < col+1 {
		t.widths = append(t.widths, 0)
	}
	t.widths[col] = w
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	for _, line := range t.Lines() {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// Lines lays out table t and returns one string per row, without
// trailing newlines or trailing spaces.
func (t *Table) Lines() []string {
	if len(t.cells) == 0 {
		return nil
	}

	// Collect max length margin for each column.
	lmargin := make([]int, t.cols)
	for _, cell := range t.cells {
		lmargin[cell.col] = max(utf8.RuneCountInString(cell.leftMargin), lmargin[cell.col])
	}

	// Compute column widths, including their left margins.
	ws := make([]int, t.cols)
	for col := range ws {
		if col < len(t.widths) {
			ws[col] = t.widths[col]
		}
	}
	for _, cell := range t.cells {
		ws[cell.col] = max(ws[cell.col], utf8.RuneCountInString(cell.value)+lmargin[cell.col])
	}

	// Convert column widths into starting offsets. The offset of
	// column i is where i's left margin begins.
	offs := make([]int, t.cols+1)
	off := 0
	for i, w := range ws {
		offs[i] = off
		off += w
	}
	offs[len(ws)] = off

	// Cells are appended in row order and left to right.
	lines := make([]string, t.curRow+1)
	var b strings.Builder
	row := 0
	flush := func() {
		lines[row] = strings.TrimRight(b.String(), " ")
		b.Reset()
		off = 0
	}
	off = 0
	for _, cell := range t.cells {
		if strings.TrimSpace(cell.value) == "" && strings.TrimSpace(cell.leftMargin) == "" {
			// Skip empty cells. This avoids printing
			// unnecessary trailing spaces if cells appear
			// at the end of a row.
			continue
		}
		for cell.row > row {
			flush()
			row++
		}

		// Space to the cell's starting offset and print its
		// left margin.
		spaces := offs[cell.col] - off
		fmt.Fprintf(&b, "%*s%*s", spaces, "", lmargin[cell.col], cell.leftMargin)
		off += spaces + lmargin[cell.col]

		// Total cell width, excluding the margin we just printed.
		tw := offs[cell.col+1] - offs[cell.col] - lmargin[cell.col]
		s := cell.alignment.lpad(cell.value, tw)
		b.WriteString(s)
		off += utf8.RuneCountInString(s)
	}
	flush()
	return lines[:row+1]
}
