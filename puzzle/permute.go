package puzzle

/*

Permutation reduction

The first-order strategies reason about one value or one cell at
a time.  Permutation reduction reasons about whole units: for
each unit it enumerates every assignment of candidate values to
the unit's unknown cells in which all values are distinct, and
then keeps, for each cell, only the values that occur at that
cell in some valid assignment.  A candidate that appears in no
globally-consistent completion of the unit is thereby removed,
which catches deductions elimination and hidden singles can't
reach.

Enumeration cost is exponential in the number of unknown cells
of a unit, bounded in practice by small residual candidate sets.
This is deliberately the most expensive strategy and the solver
tries it last.

*/

// permutations enumerates the Cartesian product of a list of
// candidate sets, yielding only the assignments whose values are
// pairwise distinct.  The sequence is lazy, finite, and not
// restartable.  The enumeration is iterative (an odometer over
// the set list) so deep units don't grow the call stack.
type permutations struct {
	sets []intset
	idx  []int
	done bool
}

// listPermutations starts the enumeration of valid assignments
// for the given candidate sets.
func listPermutations(sets []intset) *permutations {
	p := &permutations{sets: sets, idx: make([]int, len(sets))}
	for _, cs := range sets {
		if len(cs) == 0 {
			p.done = true
		}
	}
	return p
}

// next returns the next assignment with pairwise-distinct
// values, and whether one was available.  The returned slice is
// freshly allocated for each assignment.
func (p *permutations) next() ([]int, bool) {
	for !p.done {
		vals := make([]int, len(p.sets))
		for i, cs := range p.sets {
			vals[i] = cs[p.idx[i]]
		}
		p.advance()
		if allDistinct(vals) {
			return vals, true
		}
	}
	return nil, false
}

// advance steps the odometer to the next raw product element,
// marking the enumeration done when it wraps around.
func (p *permutations) advance() {
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < len(p.sets[i]) {
			return
		}
		p.idx[i] = 0
	}
	p.done = true
}

// allDistinct reports whether the values are pairwise distinct.
func allDistinct(vals []int) bool {
	for i := 1; i < len(vals); i++ {
		for j := 0; j < i; j++ {
			if vals[i] == vals[j] {
				return false
			}
		}
	}
	return true
}

// reducePermutations computes, for each position, the union of
// the values that position takes across all valid assignments of
// the given candidate sets.  Since every such value comes from
// the position's own set, the result can only shrink or preserve
// the inputs.  Returns false if no valid assignment exists, in
// which case the results must not be used.
func reducePermutations(sets []intset) ([]intset, bool) {
	unions := make([]intset, len(sets))
	found := false
	perms := listPermutations(sets)
	for vals, ok := perms.next(); ok; vals, ok = perms.next() {
		found = true
		for i, v := range vals {
			unions[i].insert(v)
		}
	}
	return unions, found
}

// reduce applies permutation reduction across all rows, then all
// columns, then all sectors, writing reduced candidate sets back
// into the model.  Reports whether any candidate set shrank.
func (m *model) reduce() bool {
	changed := false
	for ui := range m.mapping.rows {
		if m.reduceUnit(&m.mapping.rows[ui]) {
			changed = true
		}
	}
	for ui := range m.mapping.columns {
		if m.reduceUnit(&m.mapping.columns[ui]) {
			changed = true
		}
	}
	for ui := range m.mapping.sectors {
		if m.reduceUnit(&m.mapping.sectors[ui]) {
			changed = true
		}
	}
	return changed
}

// reduceUnit reduces the candidate sets of one unit's unknown
// cells.  Cells already solved (empty candidate set) are
// skipped.  A unit with no valid assignment at all can't happen
// for a logically consistent grid; if it does, the unit's sets
// are left untouched.
func (m *model) reduceUnit(u *unitDescriptor) bool {
	var open []int
	for _, idx := range u.indices {
		if len(m.cands[idx]) > 0 {
			open = append(open, idx)
		}
	}
	if len(open) == 0 {
		return false
	}
	sets := make([]intset, len(open))
	for i, idx := range open {
		sets[i] = m.cands[idx]
	}
	reduced, ok := reducePermutations(sets)
	if !ok {
		return false
	}
	changed := false
	for i, idx := range open {
		if !reduced[i].equal(m.cands[idx]) {
			m.cands[idx] = reduced[i]
			changed = true
		}
	}
	return changed
}
