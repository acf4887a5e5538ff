package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var (
	testPuzzleValues = []int{
		1, 0, 3, 0,
		0, 4, 0, 2,
		2, 0, 4, 0,
		0, 3, 0, 1,
	}
	valueFormatContent = "1.3.\n.4.2\n2.4.\n.3.1\n"
	clueFormatContent  = `4
# the four corners are known
0 0 1
0 2 3
1 1 4
1 3 2
2 0 2
2 2 4
3 1 3
3 3 1
`
)

func writePuzzleFile(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "puzzle")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write puzzle file: %v", err)
	}
	return name
}

func TestReadPuzzleValueFormat(t *testing.T) {
	cases := []string{
		valueFormatContent,
		"1.3..4.22.4..3.1",
		"1030\n0402\n2040\n0301",
		"  1.3.\n\n.4.2\n# comment\n2.4.\n.3.1",
	}
	for i, content := range cases {
		g, err := readPuzzle(writePuzzleFile(t, content))
		if err != nil {
			t.Fatalf("Case %d: failed to read puzzle: %v", i, err)
		}
		if !reflect.DeepEqual(g.Values(), testPuzzleValues) {
			t.Errorf("Case %d: got values %v, expected %v", i, g.Values(), testPuzzleValues)
		}
	}
}

func TestReadPuzzleClueFormat(t *testing.T) {
	g, err := readPuzzle(writePuzzleFile(t, clueFormatContent))
	if err != nil {
		t.Fatalf("Failed to read puzzle: %v", err)
	}
	if !reflect.DeepEqual(g.Values(), testPuzzleValues) {
		t.Errorf("Got values %v, expected %v", g.Values(), testPuzzleValues)
	}
}

func TestReadPuzzleErrors(t *testing.T) {
	cases := []string{
		"",                     // empty file
		"# only a comment\n",   // nothing but comments
		"1.3..4.22.4..3.",      // truncated value string
		"1.3..4.22.4..3.1x",    // bad value character
		"4\n0 0\n",             // clue line with too few fields
		"4\n0 0 one\n",         // clue line with a non-number
		"4\n0 9 1\n",           // clue off the grid
		"3\n0 0 1\n",           // bad side length
	}
	for i, content := range cases {
		if _, err := readPuzzle(writePuzzleFile(t, content)); err == nil {
			t.Errorf("Case %d: read of bad puzzle %q succeeded", i, content)
		}
	}
}

func TestReadPuzzleMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "no-such-puzzle")
	if _, err := readPuzzle(name); err == nil {
		t.Errorf("Read of missing file succeeded")
	}
}

func TestShortId(t *testing.T) {
	if got := shortId("abcdef"); got != "abcdef" {
		t.Errorf("Got %q, expected %q", got, "abcdef")
	}
	long := "0123456789abcdef0123456789abcdef"
	if got := shortId(long); got != "0123456789ab" {
		t.Errorf("Got %q, expected %q", got, "0123456789ab")
	}
}

func TestIsHexId(t *testing.T) {
	sig := "a3f0" + "0123456789abcdef" + "0123456789abcdef" + "0123456789abcdef" + "0123456789ab"
	if len(sig) != 64 {
		t.Fatalf("Test signature has length %d", len(sig))
	}
	if !isHexId(sig) {
		t.Errorf("Valid signature rejected")
	}
	if isHexId("sample-1") {
		t.Errorf("Puzzle name accepted as signature")
	}
	if isHexId(sig[:63]) {
		t.Errorf("Short signature accepted")
	}
	if isHexId(sig[:63] + "G") {
		t.Errorf("Non-hex signature accepted")
	}
}
