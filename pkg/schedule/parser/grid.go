// Package parser turns a timetable sheet grid into day blocks and lesson slots.
package parser

import (
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Value is a cell value as read from a Grid. The zero Value is absent.
type Value struct {
	text string
	ok   bool
}

// NewValue returns a present cell value.
func NewValue(text string) Value {
	return Value{text: text, ok: true}
}

// Exists reports whether the cell is present in the grid.
func (v Value) Exists() bool { return v.ok }

// Blank reports whether the cell is absent or holds only whitespace.
func (v Value) Blank() bool { return !v.ok || strings.TrimSpace(v.text) == "" }

// String returns the raw cell text, or "" when absent.
func (v Value) String() string { return v.text }

// Trimmed returns the cell text without surrounding whitespace.
func (v Value) Trimmed() string { return strings.TrimSpace(v.text) }

// Grid is a read-only view over one sheet's cells.
// Cell never fails: out-of-range coordinates yield an absent Value.
type Grid interface {
	Cell(column string, row int) Value
}

// MapGrid is an in-memory Grid. It is safe for concurrent reads once filled.
type MapGrid struct {
	rows map[int]map[string]string
}

// NewMapGrid returns an empty grid.
func NewMapGrid() *MapGrid {
	return &MapGrid{rows: make(map[int]map[string]string)}
}

// Set stores a cell value. Column letters are case-insensitive.
func (g *MapGrid) Set(column string, row int, text string) {
	if row < 1 {
		return
	}
	cols, ok := g.rows[row]
	if !ok {
		cols = make(map[string]string)
		g.rows[row] = cols
	}
	cols[strings.ToUpper(column)] = text
}

// Cell implements Grid.
func (g *MapGrid) Cell(column string, row int) Value {
	cols, ok := g.rows[row]
	if !ok {
		return Value{}
	}
	text, ok := cols[strings.ToUpper(column)]
	if !ok {
		return Value{}
	}
	return NewValue(text)
}

// RowNumbers returns the numbers of all rows holding at least one cell, ascending.
func (g *MapGrid) RowNumbers() []int {
	nums := make([]int, 0, len(g.rows))
	for r := range g.rows {
		nums = append(nums, r)
	}
	sort.Ints(nums)
	return nums
}

// Len returns the number of stored cells.
func (g *MapGrid) Len() int {
	n := 0
	for _, cols := range g.rows {
		n += len(cols)
	}
	return n
}

// CellName formats a (column, row) pair as an A1-style reference.
func CellName(column string, row int) string {
	num, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return strings.ToUpper(column) + "?"
	}
	name, err := excelize.CoordinatesToCellName(num, row)
	if err != nil {
		return strings.ToUpper(column) + "?"
	}
	return name
}
