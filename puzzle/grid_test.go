package puzzle

import (
	"reflect"
	"testing"
)

/*

Test values

*/

var (
	smallClues = []Clue{
		{0, 0, 1}, {0, 2, 3},
		{1, 1, 3}, {1, 3, 1},
		{2, 0, 3}, {2, 2, 1},
		{3, 1, 1}, {3, 3, 3},
	}
	smallValues = []int{
		1, 0, 3, 0,
		0, 3, 0, 1,
		3, 0, 1, 0,
		0, 1, 0, 3,
	}
)

func TestNewGrid(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	if got := g.Values(); !reflect.DeepEqual(got, smallValues) {
		t.Errorf("grid values: got %v, expected %v", got, smallValues)
	}
	if g.SideLength() != 4 || g.SectorLength() != 2 {
		t.Errorf("got side %d sector %d, expected 4 and 2",
			g.SideLength(), g.SectorLength())
	}
	if g.UnknownCount() != 8 {
		t.Errorf("unknown count: got %d, expected 8", g.UnknownCount())
	}
	if g.Solved() {
		t.Errorf("grid with unknowns reported solved")
	}
}

func TestNewGridBadClues(t *testing.T) {
	cases := []struct {
		clues []Clue
		cond  ErrorCondition
	}{
		{[]Clue{{4, 0, 1}}, TooLargeCondition},
		{[]Clue{{-1, 0, 1}}, TooSmallCondition},
		{[]Clue{{0, 7, 1}}, TooLargeCondition},
		{[]Clue{{0, 0, 5}}, TooLargeCondition},
		{[]Clue{{0, 0, 0}}, TooSmallCondition},
		{[]Clue{{0, 0, 1}, {0, 0, 2}}, DuplicateClueCondition},
	}
	for i, tc := range cases {
		_, e := NewGrid(4, tc.clues)
		if e == nil {
			t.Errorf("case %d: expected failure", i)
			continue
		}
		if err := e.(Error); err.Condition != tc.cond {
			t.Errorf("case %d: got condition %v, expected %v", i, err.Condition, tc.cond)
		}
	}
}

func TestNewGridFromValues(t *testing.T) {
	g, e := NewGridFromValues(smallValues)
	if e != nil {
		t.Fatalf("NewGridFromValues failed: %v", e)
	}
	if got := g.Values(); !reflect.DeepEqual(got, smallValues) {
		t.Errorf("grid values: got %v, expected %v", got, smallValues)
	}

	if _, e = NewGridFromValues(make([]int, 17)); e == nil {
		t.Errorf("non-square value count: expected failure")
	}
	bad := make([]int, 16)
	bad[3] = 9
	if _, e = NewGridFromValues(bad); e == nil {
		t.Errorf("out of range value: expected failure")
	}
}

func TestGridSet(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	if e := g.Set(0, 1, 2); e != nil {
		t.Fatalf("Set of unknown cell failed: %v", e)
	}
	if g.Value(0, 1) != 2 {
		t.Errorf("Set didn't stick: got %d", g.Value(0, 1))
	}
	// re-setting the same value is a no-op
	if e := g.Set(0, 1, 2); e != nil {
		t.Errorf("idempotent Set failed: %v", e)
	}
	// setting a different value is a conflict
	e = g.Set(0, 1, 4)
	if e == nil {
		t.Fatalf("conflicting Set succeeded")
	}
	if err := e.(Error); err.Condition != ConflictingValueCondition {
		t.Errorf("conflicting Set: got condition %v", err.Condition)
	}
	if g.Value(0, 1) != 2 {
		t.Errorf("conflicting Set modified the grid: got %d", g.Value(0, 1))
	}
	// out of range arguments
	for _, bad := range [][3]int{{-1, 0, 1}, {0, 4, 1}, {0, 0, 0}, {0, 0, 5}} {
		if e := g.Set(bad[0], bad[1], bad[2]); e == nil {
			t.Errorf("Set%v: expected failure", bad)
		}
	}
}

func TestGridCopy(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	c := g.Copy()
	if !reflect.DeepEqual(c.Values(), g.Values()) {
		t.Errorf("copy values differ: %v vs %v", c.Values(), g.Values())
	}
	if e := c.Set(0, 1, 2); e != nil {
		t.Fatalf("Set on copy failed: %v", e)
	}
	if g.Value(0, 1) != 0 {
		t.Errorf("Set on copy modified the original")
	}
	var nilGrid *Grid
	if nilGrid.Copy() != nil {
		t.Errorf("copy of nil grid is not nil")
	}
}

func TestGridClues(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	if got := g.Clues(); !reflect.DeepEqual(got, smallClues) {
		t.Errorf("clues: got %v, expected %v", got, smallClues)
	}
}
