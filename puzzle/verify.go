package puzzle

/*

Verification

*/

// Verify checks a completely solved grid for integrity: every
// row, column, and sector must contain every value in the range.
// Since each unit has exactly as many cells as there are values,
// containment of the full range implies there are no duplicates
// either.  Verification fails immediately on a grid that still
// has unknown cells; otherwise the first offending unit is named
// in the returned Error.  Returns nil when all units check out.
//
// This is a post-hoc integrity check, independent of the solving
// loop.
func Verify(g *Grid) error {
	if count := g.UnknownCount(); count > 0 {
		return Error{
			Scope:     ArgumentScope,
			Structure: ScopeStructure,
			Condition: UnsolvedGridCondition,
			Values:    ErrorData{count},
		}
	}
	if err := g.verifyUnits(g.mapping.rows); err != nil {
		return err
	}
	if err := g.verifyUnits(g.mapping.columns); err != nil {
		return err
	}
	return g.verifyUnits(g.mapping.sectors)
}

// verifyUnits checks one kind of unit, returning an Error naming
// the first unit missing a value.
func (g *Grid) verifyUnits(units []unitDescriptor) error {
	sidelen := g.mapping.sidelen
	for ui := range units {
		present := make([]bool, sidelen+1)
		for _, idx := range units[ui].indices {
			if v := g.values[idx]; v >= 1 && v <= sidelen {
				present[v] = true
			}
		}
		for v := 1; v <= sidelen; v++ {
			if !present[v] {
				return Error{
					Scope:     UnitScope,
					Structure: ScopeStructure,
					Condition: MissingValueCondition,
					Values:    ErrorData{units[ui].id, v},
				}
			}
		}
	}
	return nil
}
