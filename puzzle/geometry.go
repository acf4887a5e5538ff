package puzzle

/*

Grid geometry

A grid's geometry is fully determined by its side length, which
must be a perfect square: the sector side is its exact integer
square root.  Cells are stored in reading order (left-to-right,
top-to-bottom, 0-based), and constraint units are rows, columns,
and the non-overlapping sectorLen x sectorLen sub-blocks, called
sectors.

*/

// A unit descriptor identifies a constraint unit and enumerates
// the flat indices of its cells, in reading order within the
// unit.
type unitDescriptor struct {
	id      UnitID
	indices []int
}

// A gridMapping summarizes the geometry parameters of a grid:
// the side length, the sector side, and the descriptors of all
// the constraint units.
type gridMapping struct {
	sidelen     int
	sectorLen   int
	cellCount   int
	rows        []unitDescriptor
	columns     []unitDescriptor
	sectors     []unitDescriptor
	sectorHeads []int // flat index of each sector's top-left cell
}

// gridMaps is where we memoize computed grid mappings for each
// side length we've encountered, to avoid computing them more
// than once.
var gridMaps = make(map[int]*gridMapping)

// Find the integer square root of val, if it exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

// cellIndex computes the flat index of a (row, column) pair.
func (gm *gridMapping) cellIndex(row, col int) int {
	return row*gm.sidelen + col
}

// cellCoords computes the (row, column) pair of a flat index.
func (gm *gridMapping) cellCoords(idx int) (int, int) {
	return idx / gm.sidelen, idx % gm.sidelen
}

// sectorAt returns the index of the sector containing the given
// cell.  Sectors are numbered in reading order.
func (gm *gridMapping) sectorAt(row, col int) int {
	return (row/gm.sectorLen)*gm.sectorLen + col/gm.sectorLen
}

// sectorIndexes returns the row (equally, column) indices that
// share a sector band with the given index.  For a 9x9 grid,
// indices 0 through 2 map to [0 1 2], and so on.
func (gm *gridMapping) sectorIndexes(i int) []int {
	head := i - i%gm.sectorLen
	out := make([]int, gm.sectorLen)
	for j := range out {
		out[j] = head + j
	}
	return out
}

func computeGridMapping(slen, seclen int) *gridMapping {
	gm := &gridMapping{
		sidelen:   slen,
		sectorLen: seclen,
		cellCount: slen * slen,
	}
	gm.rows = make([]unitDescriptor, slen)
	gm.columns = make([]unitDescriptor, slen)
	gm.sectors = make([]unitDescriptor, slen)
	gm.sectorHeads = make([]int, slen)
	for i := 0; i < slen; i++ {
		// row i
		row := make([]int, slen)
		for ri := 0; ri < slen; ri++ {
			row[ri] = slen*i + ri
		}
		gm.rows[i] = unitDescriptor{UnitID{UtypeRow, i}, row}
		// column i
		col := make([]int, slen)
		for ci := 0; ci < slen; ci++ {
			col[ci] = slen*ci + i
		}
		gm.columns[i] = unitDescriptor{UnitID{UtypeColumn, i}, col}
		// sector i
		sector := make([]int, slen)
		headrow, headcol := seclen*(i/seclen), seclen*(i%seclen)
		for sri := 0; sri < seclen; sri++ {
			for sci := 0; sci < seclen; sci++ {
				sector[sri*seclen+sci] = slen*(headrow+sri) + (headcol + sci)
			}
		}
		gm.sectors[i] = unitDescriptor{UnitID{UtypeSector, i}, sector}
		gm.sectorHeads[i] = slen*headrow + headcol
	}
	return gm
}

// gridMappingFor returns the grid mapping for the given side
// length.  This computes (first time) and then returns
// (thereafter) the mapping.  Returns an error if the side length
// is not a perfect square or is out of bounds.
func gridMappingFor(sidelen int) (*gridMapping, error) {
	min, max := 4, 25 // largest whose values render as single characters
	if sidelen < min {
		return nil, geometryError(SideLengthAttribute, sidelen, TooSmallCondition, min)
	}
	if sidelen > max {
		return nil, geometryError(SideLengthAttribute, sidelen, TooLargeCondition, max)
	}
	seclen, ok := findIntSquareRoot(sidelen)
	if !ok {
		return nil, geometryError(SideLengthAttribute, sidelen, NonSquareCondition, 0)
	}
	gm, ok := gridMaps[sidelen]
	if ok {
		return gm, nil
	}
	gm = computeGridMapping(sidelen, seclen)
	gridMaps[sidelen] = gm
	return gm, nil
}

/*

Errors

*/

func geometryError(attr ErrorAttribute, val int, cond ErrorCondition, limit int) Error {
	err := Error{
		Scope:     GeometryScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData{val},
	}
	if cond == TooSmallCondition || cond == TooLargeCondition {
		err.Values = append(err.Values, limit)
	}
	return err
}
