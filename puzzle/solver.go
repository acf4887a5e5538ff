package puzzle

/*

Solver loop

The solver iterates until the grid is complete.  Each iteration
rebuilds the candidate model from the grid's current known
values and escalates through the strategies in increasing cost
order:

1. Naked singles against the fresh model.

2. Hidden singles, if no naked single was found.

3. Permutation reduction of the model, then naked and hidden
singles once more against the reduced model.

Whatever the first productive strategy finds is committed to the
grid and the next iteration starts over with a fresh model.  If
a full iteration produces nothing, the puzzle is not solvable by
these strategies: the solver stops with a stuck error rather
than guessing.  The error carries the iteration count and
snapshots of the grid and the candidate model, for diagnosis.

*/

// The solveState tracks the solver through its iterations.
type solveState int

const (
	stateUnsolved solveState = iota
	stateProgressing
	stateSolved
	stateStuck
)

// A solver drives the iterate-until-solved loop over one grid.
// Grids are exclusively owned by the single in-progress solve
// call; no concurrent solves may share a grid.
type solver struct {
	grid       *Grid
	state      solveState
	iterations int
}

// Solve fills all the unknown cells of a grid using only
// constraint propagation, mutating the grid in place.  It
// returns the number of iterations performed, and an Error with
// StuckCondition if no strategy can make progress before the
// grid is complete.  Solving an already-complete grid performs
// zero iterations.
func Solve(g *Grid) (int, error) {
	s := &solver{grid: g, state: stateUnsolved}
	err := s.run()
	return s.iterations, err
}

// run the solver loop to completion or failure.
func (s *solver) run() error {
	for !s.grid.Solved() {
		s.iterations++
		m := newModel(s.grid)
		found := m.findSolutions()
		if len(found) == 0 {
			found = m.findAdvancedSolutions()
		}
		if len(found) == 0 {
			// escalate to the expensive strategy and retry
			m.reduce()
			found = m.findSolutions()
			if len(found) == 0 {
				found = m.findAdvancedSolutions()
			}
		}
		if len(found) == 0 {
			s.state = stateStuck
			return stuckError(s.iterations, s.grid, m)
		}
		if err := s.commit(found); err != nil {
			s.state = stateStuck
			return err
		}
		s.state = stateProgressing
	}
	s.state = stateSolved
	return nil
}

// commit applies the found solutions to the grid.  A conflicting
// solution means the clues were contradictory; the resulting
// Error is propagated unchanged.
func (s *solver) commit(found []Solution) error {
	for _, sol := range found {
		if err := s.grid.Set(sol.Row, sol.Col, sol.Value); err != nil {
			return err
		}
	}
	return nil
}

// stuckError builds the terminal failure for a solve call that
// made no progress: the iteration that failed, the grid values,
// and every cell's remaining candidates.
func stuckError(iterations int, g *Grid, m *model) Error {
	return Error{
		Scope:     SolverScope,
		Structure: ScopeStructure,
		Condition: StuckCondition,
		Values:    ErrorData{iterations, g.Values(), m.snapshot()},
	}
}
