package puzzle

/*

Candidate model

The model holds, for each cell, the set of values the cell can
still take.  It is derived from the grid's known values and is
disposable scratch state: the solver rebuilds it from the grid at
the start of every iteration.  Candidate sets only ever shrink.
Cells with a known grid value have an empty candidate set.

*/

// A model is the matrix of per-cell candidate sets, indexed the
// same way as the grid's cells.
type model struct {
	mapping *gridMapping
	cands   []intset
}

// newModel builds a fully-consistent first-order candidate model
// for a grid: every cell starts with the full value range, then
// each known cell clears its own set and eliminates its value
// from all its row, column, and sector peers.
func newModel(g *Grid) *model {
	gm := g.mapping
	m := &model{mapping: gm, cands: make([]intset, gm.cellCount)}
	for i := range m.cands {
		m.cands[i] = newIntsetRange(gm.sidelen)
	}
	for i, val := range g.values {
		if val != 0 {
			m.cands[i] = intset{}
			row, col := gm.cellCoords(i)
			m.eliminate(row, col, val)
		}
	}
	return m
}

// eliminate removes a value from the candidate set of every
// other cell sharing the given cell's row, column, or sector.
// Removing an already-absent value is a no-op, so elimination is
// idempotent.
func (m *model) eliminate(row, col, value int) {
	gm := m.mapping
	idx := gm.cellIndex(row, col)
	for _, pi := range gm.rows[row].indices {
		if pi != idx {
			m.cands[pi].remove(value)
		}
	}
	for _, pi := range gm.columns[col].indices {
		if pi != idx {
			m.cands[pi].remove(value)
		}
	}
	for _, pi := range gm.sectors[gm.sectorAt(row, col)].indices {
		if pi != idx {
			m.cands[pi].remove(value)
		}
	}
}

// candidates returns a copy of the candidate set for a cell.
func (m *model) candidates(row, col int) []int {
	return newIntsetCopy(m.cands[m.mapping.cellIndex(row, col)])
}

// snapshot returns a copy of every cell's candidate set, in
// reading order, for failure diagnosis.  The return value does
// not share storage with the model.
func (m *model) snapshot() [][]int {
	out := make([][]int, len(m.cands))
	for i, cs := range m.cands {
		out[i] = newIntsetCopy(cs)
	}
	return out
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets to represent the candidate values of cells.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// contains reports whether value v is in the intset.
func (ps intset) contains(v int) bool {
	_, found := ps.find(v)
	return found
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// equal reports whether two intsets have the same members.
func (ps intset) equal(xs intset) bool {
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
