// Package puzzle provides a deterministic, pure-logic Sudoku
// solver and the grid model it operates on.
//
// In this package, grids are made of cells which are either
// unknown (represented with a 0 value) or have a value between 1
// and the side length of the grid (inclusive).  Cells are
// designated by 0-based (row, column) coordinates, row 0 at the
// top, and are stored left-to-right, top-to-bottom (English
// reading order).
//
// The side length of a grid must be a perfect square, and its
// exact integer square root is the sector side: the grid divides
// into non-overlapping square sectors of that side.  Rows,
// columns, and sectors are collectively called units, and each
// unit must contain every value exactly once in a solved grid.
//
// For each unknown cell the solver maintains a candidate set:
// the values the cell can still take without contradicting the
// known cells.  Solving proceeds purely by shrinking candidate
// sets (elimination, hidden singles, and permutation reduction,
// in increasing cost order) until every cell is known.  The
// solver never guesses and never backtracks: a grid whose
// completion requires branching search is reported as stuck, not
// solved.
package puzzle

import (
	"fmt"
)

// A Clue is a caller-supplied known cell: a (row, column, value)
// triple seeding the grid.  Rows and columns are 0-based; values
// range from 1 to the side length.
type Clue struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// A Solution is an inferred assignment produced by one of the
// solver strategies: the given cell must hold the given value in
// any completion of the grid.  Solutions are derived from the
// candidate model and applied back to the grid by the solver
// loop.
type Solution struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// A UnitID names a row, column, or sector, the sets of cells
// that are each constrained to hold every value exactly once.
// Unit numbering is 0-based, in reading order.
type UnitID struct {
	Utype string `json:"utype"`
	Index int    `json:"index"`
}

// Unit IDs implement Stringer
func (uid UnitID) String() string {
	if uid.Utype == "" {
		return fmt.Sprintf("<unit> %d", uid.Index)
	}
	return fmt.Sprintf("%s %d", uid.Utype, uid.Index)
}

// Utype (unit type) constants.  These are human-readable but not
// localized.
const (
	UtypeRow    = "row"
	UtypeColumn = "column"
	UtypeSector = "sector"
)
