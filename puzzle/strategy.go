package puzzle

/*

First-order strategies

The two cheap inference strategies read the candidate model and
produce solutions without mutating anything.  Naked singles are
cells whose candidate set has exactly one member.  Hidden singles
are values that fit only one cell within a unit, although that
cell may have other candidates too.

*/

// findSolutions scans every cell for naked singles.  The result
// is in reading order, so repeated runs over the same model are
// reproducible.
func (m *model) findSolutions() []Solution {
	var out []Solution
	for i, cs := range m.cands {
		if len(cs) == 1 {
			row, col := m.mapping.cellCoords(i)
			out = append(out, Solution{Row: row, Col: col, Value: cs[0]})
		}
	}
	return out
}

// findAdvancedSolutions scans every unit for hidden singles.
// Results come sector units first, then rows, then columns; a
// cell/value pair found through more than one unit is reported
// once.  All results carry absolute grid coordinates.
func (m *model) findAdvancedSolutions() []Solution {
	var out []Solution
	seen := make(map[int]bool) // keyed by cell index and value
	for ui := range m.mapping.sectors {
		out = m.hiddenSingles(&m.mapping.sectors[ui], seen, out)
	}
	for ui := range m.mapping.rows {
		out = m.hiddenSingles(&m.mapping.rows[ui], seen, out)
	}
	for ui := range m.mapping.columns {
		out = m.hiddenSingles(&m.mapping.columns[ui], seen, out)
	}
	return out
}

// hiddenSingles appends the hidden singles of one unit: for each
// value, if exactly one of the unit's cells still has the value
// as a candidate, that cell must hold it.
func (m *model) hiddenSingles(u *unitDescriptor, seen map[int]bool, out []Solution) []Solution {
	sidelen := m.mapping.sidelen
	for v := 1; v <= sidelen; v++ {
		count, last := 0, 0
		for _, idx := range u.indices {
			if m.cands[idx].contains(v) {
				count++
				last = idx
			}
		}
		if count != 1 {
			continue
		}
		key := last*(sidelen+1) + v
		if seen[key] {
			continue
		}
		seen[key] = true
		row, col := m.mapping.cellCoords(last)
		out = append(out, Solution{Row: row, Col: col, Value: v})
	}
	return out
}
