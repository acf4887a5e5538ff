package puzzle

import (
	"reflect"
	"testing"
)

/*

Test values

Scenario A is solvable with naked and hidden singles alone.
Scenario B stalls on singles and needs permutation reduction to
open up.  The stuck grids have symmetric candidate pairs that no
amount of pure logic can tell apart.

*/

var (
	scenarioAClues = []Clue{
		{0, 1, 6}, {0, 2, 4}, {0, 3, 8}, {0, 4, 5}, {0, 5, 1}, {0, 6, 3},
		{1, 4, 7}, {1, 5, 4}, {1, 8, 1},
		{2, 2, 1}, {2, 3, 9}, {2, 4, 3}, {2, 6, 8}, {2, 7, 7},
		{3, 0, 4}, {3, 3, 7}, {3, 7, 8},
		{4, 0, 6}, {4, 1, 1}, {4, 3, 5}, {4, 8, 7},
		{5, 3, 1}, {5, 5, 9}, {5, 7, 2},
		{6, 0, 9}, {6, 2, 6}, {6, 7, 5},
		{7, 4, 8}, {7, 8, 3},
		{8, 0, 5}, {8, 3, 3}, {8, 4, 9}, {8, 6, 7}, {8, 7, 1},
	}
	scenarioASolution = "764851392893274561251936874425763189619528437387149625936417258172685943548392716"

	scenarioBValues   = "903060000060320000701800003000000600300500804000007100000000080800000507050010020"
	scenarioBSolution = "943761258568329741721854963475183692316592874289647135132975486894236517657418329"

	stuckValues = "172008493859234167436197285583926741641785329297413658964871532725349816318002974"
)

// solveSinglesOnly runs the solver loop without the permutation
// reduction escalation, reporting whether the grid completed.
func solveSinglesOnly(t *testing.T, g *Grid) bool {
	for !g.Solved() {
		m := newModel(g)
		found := m.findSolutions()
		if len(found) == 0 {
			found = m.findAdvancedSolutions()
		}
		if len(found) == 0 {
			return false
		}
		for _, s := range found {
			if e := g.Set(s.Row, s.Col, s.Value); e != nil {
				t.Fatalf("commit of %v failed: %v", s, e)
			}
		}
	}
	return true
}

func TestSolveScenarioA(t *testing.T) {
	g, e := NewGrid(9, scenarioAClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	iterations, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve failed after %d iterations: %v", iterations, err)
	}
	if !g.Solved() {
		t.Fatalf("Solve returned with %d unknown cells", g.UnknownCount())
	}
	if got := g.ValueString(); got != scenarioASolution {
		t.Errorf("solution: got %v, expected %v", got, scenarioASolution)
	}
	if err := Verify(g); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

// Scenario A must be within reach of the single strategies; the
// expensive escalation is not needed.
func TestScenarioASinglesOnly(t *testing.T) {
	g, e := NewGrid(9, scenarioAClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	if !solveSinglesOnly(t, g) {
		t.Fatalf("singles alone did not finish scenario A")
	}
	if got := g.ValueString(); got != scenarioASolution {
		t.Errorf("solution: got %v, expected %v", got, scenarioASolution)
	}
}

func TestSolveScenarioB(t *testing.T) {
	g, e := ParseValueString(scenarioBValues)
	if e != nil {
		t.Fatalf("ParseValueString failed: %v", e)
	}
	// singles alone must stall on this puzzle...
	stalled := g.Copy()
	if solveSinglesOnly(t, stalled) {
		t.Fatalf("scenario B no longer needs permutation reduction")
	}
	// ...but the full strategy chain finishes it
	iterations, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve failed after %d iterations: %v", iterations, err)
	}
	if iterations == 0 {
		t.Errorf("Solve of an open grid reported zero iterations")
	}
	if got := g.ValueString(); got != scenarioBSolution {
		t.Errorf("solution: got %v, expected %v", got, scenarioBSolution)
	}
	if err := Verify(g); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestSolveStuck(t *testing.T) {
	g, e := ParseValueString(stuckValues)
	if e != nil {
		t.Fatalf("ParseValueString failed: %v", e)
	}
	before := g.Values()
	iterations, err := Solve(g)
	if err == nil {
		t.Fatalf("Solve of an ambiguous grid succeeded")
	}
	serr, ok := err.(Error)
	if !ok {
		t.Fatalf("Solve error is not an Error: %v", err)
	}
	if serr.Condition != StuckCondition {
		t.Fatalf("got condition %v, expected StuckCondition", serr.Condition)
	}
	if iterations != 1 {
		t.Errorf("got %d iterations, expected to stick on the first", iterations)
	}
	// the error carries the iteration count and both snapshots
	if len(serr.Values) != 3 {
		t.Fatalf("stuck error values: got %d entries, expected 3", len(serr.Values))
	}
	if got := serr.Values[0].(int); got != 1 {
		t.Errorf("stuck iteration count: got %d", got)
	}
	if got := serr.Values[1].([]int); !reflect.DeepEqual(got, before) {
		t.Errorf("stuck grid snapshot: got %v", got)
	}
	cands := serr.Values[2].([][]int)
	// the four open cells form a symmetric pair: all hold {5, 6}
	for _, idx := range []int{3, 4, 75, 76} {
		if !reflect.DeepEqual(cands[idx], []int{5, 6}) {
			t.Errorf("cell %d candidates: got %v, expected [5 6]", idx, cands[idx])
		}
	}
	// no progress means no modification
	if !reflect.DeepEqual(g.Values(), before) {
		t.Errorf("stuck solve modified the grid")
	}
}

// The small two-candidate grid sticks the same way: every open
// cell can hold 2 or 4, and nothing distinguishes them.
func TestSolveStuckSmall(t *testing.T) {
	g, e := NewGridFromValues(smallValues)
	if e != nil {
		t.Fatalf("NewGridFromValues failed: %v", e)
	}
	iterations, err := Solve(g)
	if err == nil {
		t.Fatalf("Solve of an ambiguous grid succeeded")
	}
	if serr := err.(Error); serr.Condition != StuckCondition {
		t.Errorf("got condition %v, expected StuckCondition", serr.Condition)
	}
	if iterations != 1 {
		t.Errorf("got %d iterations, expected 1", iterations)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	g, e := ParseValueString(scenarioASolution)
	if e != nil {
		t.Fatalf("ParseValueString failed: %v", e)
	}
	iterations, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve of a solved grid failed: %v", err)
	}
	if iterations != 0 {
		t.Errorf("Solve of a solved grid took %d iterations", iterations)
	}
	if got := g.ValueString(); got != scenarioASolution {
		t.Errorf("Solve of a solved grid changed it: %v", got)
	}
}

func TestSolveSmallComplete(t *testing.T) {
	g, e := NewGridFromValues(nakedValues)
	if e != nil {
		t.Fatalf("NewGridFromValues failed: %v", e)
	}
	if _, err := Solve(g); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	expected := []int{
		1, 2, 3, 4,
		4, 3, 2, 1,
		3, 4, 1, 2,
		2, 1, 4, 3,
	}
	if !reflect.DeepEqual(g.Values(), expected) {
		t.Errorf("solution: got %v, expected %v", g.Values(), expected)
	}
	if err := Verify(g); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

/*

Engine-wide properties

*/

// Candidate sets only ever shrink from one iteration's model to
// the next, and the true value of every cell stays among its
// candidates until it is committed.
func TestMonotonicShrinkAndSoundness(t *testing.T) {
	g, e := NewGrid(9, scenarioAClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	truth, e := ParseValueString(scenarioASolution)
	if e != nil {
		t.Fatalf("ParseValueString failed: %v", e)
	}
	var prev [][]int
	for !g.Solved() {
		m := newModel(g)
		snap := m.snapshot()
		for i := range snap {
			if prev != nil {
				for _, v := range snap[i] {
					if !intset(prev[i]).contains(v) {
						t.Fatalf("cell %d: candidate %d appeared between iterations", i, v)
					}
				}
			}
			if g.values[i] == 0 && !intset(snap[i]).contains(truth.values[i]) {
				t.Fatalf("cell %d: true value %d eliminated", i, truth.values[i])
			}
		}
		prev = snap
		found := m.findSolutions()
		if len(found) == 0 {
			found = m.findAdvancedSolutions()
		}
		if len(found) == 0 {
			t.Fatalf("no progress while checking properties")
		}
		for _, s := range found {
			if e := g.Set(s.Row, s.Col, s.Value); e != nil {
				t.Fatalf("commit of %v failed: %v", s, e)
			}
		}
	}
}
