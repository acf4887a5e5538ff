package puzzle

import (
	"reflect"
	"testing"
)

/*

intsets

*/

func TestIntsetRange(t *testing.T) {
	if got := newIntsetRange(4); !reflect.DeepEqual(got, intset{1, 2, 3, 4}) {
		t.Errorf("newIntsetRange(4): got %v", got)
	}
	if got := newIntsetRange(0); len(got) != 0 {
		t.Errorf("newIntsetRange(0): got %v", got)
	}
}

func TestIntsetFind(t *testing.T) {
	ps := intset{1, 3, 5}
	cases := []struct {
		val   int
		where int
		found bool
	}{
		{0, 0, false}, {1, 0, true}, {2, 1, false},
		{3, 1, true}, {4, 2, false}, {5, 2, true}, {6, 3, false},
	}
	for _, tc := range cases {
		where, found := ps.find(tc.val)
		if where != tc.where || found != tc.found {
			t.Errorf("find(%d): got %d, %v, expected %d, %v",
				tc.val, where, found, tc.where, tc.found)
		}
	}
}

func TestIntsetInsertRemove(t *testing.T) {
	ps := intset{}
	for _, v := range []int{3, 1, 4, 2} {
		if ps.insert(v) {
			t.Errorf("insert(%d): reported already present", v)
		}
	}
	if !reflect.DeepEqual(ps, intset{1, 2, 3, 4}) {
		t.Fatalf("inserts left %v, expected sorted 1-4", ps)
	}
	if !ps.insert(3) {
		t.Errorf("re-insert(3): not reported present")
	}
	if !ps.remove(2) {
		t.Errorf("remove(2): not reported removed")
	}
	if ps.remove(2) {
		t.Errorf("second remove(2): reported removed")
	}
	if !reflect.DeepEqual(ps, intset{1, 3, 4}) {
		t.Errorf("after removes: got %v", ps)
	}
}

func TestIntsetEqualContains(t *testing.T) {
	ps := intset{1, 2, 4}
	if !ps.equal(intset{1, 2, 4}) || ps.equal(intset{1, 2}) || ps.equal(intset{1, 2, 5}) {
		t.Errorf("equal misbehaved on %v", ps)
	}
	if !ps.contains(4) || ps.contains(3) {
		t.Errorf("contains misbehaved on %v", ps)
	}
}

/*

candidate models

*/

func TestNewModel(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	m := newModel(g)

	// known cells have empty candidate sets
	for i, v := range g.values {
		if v != 0 && len(m.cands[i]) != 0 {
			t.Errorf("known cell %d has candidates %v", i, m.cands[i])
		}
	}
	// every unknown cell of this grid is constrained to {2, 4}
	for i, v := range g.values {
		if v == 0 && !m.cands[i].equal(intset{2, 4}) {
			t.Errorf("cell %d: got candidates %v, expected [2 4]", i, m.cands[i])
		}
	}
}

func TestModelCandidates(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	m := newModel(g)
	cs := m.candidates(0, 1)
	if !reflect.DeepEqual(cs, []int{2, 4}) {
		t.Fatalf("candidates(0, 1): got %v", cs)
	}
	// the returned slice must not alias the model
	cs[0] = 9
	if !m.cands[1].equal(intset{2, 4}) {
		t.Errorf("candidates return aliases the model: %v", m.cands[1])
	}
}

func TestEliminateIdempotent(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	m := newModel(g)
	before := m.snapshot()
	// re-eliminating every known value must change nothing
	for i, v := range g.values {
		if v != 0 {
			row, col := g.mapping.cellCoords(i)
			m.eliminate(row, col, v)
		}
	}
	if !reflect.DeepEqual(m.snapshot(), before) {
		t.Errorf("repeated elimination changed the model")
	}
}

func TestSnapshotIndependent(t *testing.T) {
	g, e := NewGrid(4, smallClues)
	if e != nil {
		t.Fatalf("NewGrid failed: %v", e)
	}
	m := newModel(g)
	snap := m.snapshot()
	m.cands[1].remove(2)
	if !reflect.DeepEqual(snap[1], []int{2, 4}) {
		t.Errorf("snapshot shares storage with the model: %v", snap[1])
	}
}
