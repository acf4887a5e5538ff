package puzzle

import (
	"crypto/sha256"
	"encoding/hex"
)

/*

Grids

*/

// A Grid is the authoritative matrix of known cell values.  It
// is created from caller-supplied clues and mutated only by Set,
// which commits inferred values.  Unknown cells hold 0.
type Grid struct {
	mapping *gridMapping
	values  []int
}

// NewGrid creates a grid with the given side length from the
// given clues.  The side length must be a perfect square within
// bounds, clue coordinates must be on the grid, and clue values
// must be in range; a cell may not receive two clues.  The clues
// are not otherwise validated: supplying clues that contradict
// each other yields a grid the solver will report as stuck.
func NewGrid(sidelen int, clues []Clue) (*Grid, error) {
	gm, err := gridMappingFor(sidelen)
	if err != nil {
		return nil, err
	}
	g := &Grid{mapping: gm, values: make([]int, gm.cellCount)}
	for _, cl := range clues {
		if cl.Row < 0 || cl.Row >= sidelen {
			return nil, rangeError(RowAttribute, cl.Row, 0, sidelen-1)
		}
		if cl.Col < 0 || cl.Col >= sidelen {
			return nil, rangeError(ColumnAttribute, cl.Col, 0, sidelen-1)
		}
		if cl.Value < 1 || cl.Value > sidelen {
			return nil, rangeError(ValueAttribute, cl.Value, 1, sidelen)
		}
		idx := gm.cellIndex(cl.Row, cl.Col)
		if g.values[idx] != 0 {
			return nil, Error{
				Scope:     CellScope,
				Structure: AttributeValueStructure,
				Attribute: ValueAttribute,
				Condition: DuplicateClueCondition,
				Values:    ErrorData{cl.Row, cl.Col, cl.Value, g.values[idx]},
			}
		}
		g.values[idx] = cl.Value
	}
	return g, nil
}

// NewGridFromValues creates a grid from a full matrix of values
// in reading order, 0 meaning unknown.  The length of the value
// list must be the square of a valid side length.
func NewGridFromValues(values []int) (*Grid, error) {
	sidelen, ok := findIntSquareRoot(len(values))
	if !ok {
		return nil, geometryError(PuzzleSizeAttribute, len(values), NonSquareCondition, 0)
	}
	gm, err := gridMappingFor(sidelen)
	if err != nil {
		return nil, err
	}
	g := &Grid{mapping: gm, values: make([]int, gm.cellCount)}
	for i, val := range values {
		if val < 0 || val > sidelen {
			return nil, rangeError(ValueAttribute, val, 0, sidelen)
		}
		g.values[i] = val
	}
	return g, nil
}

// SideLength returns the grid's side length.
func (g *Grid) SideLength() int {
	return g.mapping.sidelen
}

// SectorLength returns the side of the grid's sectors.
func (g *Grid) SectorLength() int {
	return g.mapping.sectorLen
}

// Value returns the known value of the given cell, 0 if the cell
// is unknown.
func (g *Grid) Value(row, col int) int {
	return g.values[g.mapping.cellIndex(row, col)]
}

// Values returns all the grid's cell values in reading order.
// The return value does not share storage with the grid.
func (g *Grid) Values() []int {
	out := make([]int, len(g.values))
	copy(out, g.values)
	return out
}

// Set commits a value to a cell.  Setting an unknown cell
// records the value; re-setting a cell to the value it already
// has is a no-op.  Setting a known cell to a different value is
// a conflict and returns an Error without modifying the grid.
func (g *Grid) Set(row, col, value int) error {
	sidelen := g.mapping.sidelen
	if row < 0 || row >= sidelen {
		return rangeError(RowAttribute, row, 0, sidelen-1)
	}
	if col < 0 || col >= sidelen {
		return rangeError(ColumnAttribute, col, 0, sidelen-1)
	}
	if value < 1 || value > sidelen {
		return rangeError(ValueAttribute, value, 1, sidelen)
	}
	idx := g.mapping.cellIndex(row, col)
	if old := g.values[idx]; old != 0 && old != value {
		return Error{
			Scope:     CellScope,
			Structure: ScopeStructure,
			Condition: ConflictingValueCondition,
			Values:    ErrorData{row, col, old, value},
		}
	}
	g.values[idx] = value
	return nil
}

// UnknownCount returns the number of unknown cells.
func (g *Grid) UnknownCount() (count int) {
	for _, v := range g.values {
		if v == 0 {
			count++
		}
	}
	return
}

// Solved reports whether the grid has no unknown cells.
func (g *Grid) Solved() bool {
	return g.UnknownCount() == 0
}

// Clues returns the grid's known cells as a clue list, in
// reading order.
func (g *Grid) Clues() []Clue {
	var out []Clue
	for i, v := range g.values {
		if v != 0 {
			row, col := g.mapping.cellCoords(i)
			out = append(out, Clue{Row: row, Col: col, Value: v})
		}
	}
	return out
}

// Signature returns a stable hex digest of the grid's geometry
// and cell values.  Two grids with the same side length and the
// same known cells share a signature, so it can serve as a
// storage key for a puzzle.
func (g *Grid) Signature() string {
	h := sha256.New()
	h.Write([]byte{byte(g.mapping.sidelen)})
	for _, v := range g.values {
		h.Write([]byte{byte(v)})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Copy returns a deep copy of a grid.
func (g *Grid) Copy() *Grid {
	if g == nil {
		return nil
	}
	c := &Grid{
		mapping: g.mapping, // mappings are invariant and always shared
		values:  make([]int, len(g.values)),
	}
	copy(c.values, g.values)
	return c
}
