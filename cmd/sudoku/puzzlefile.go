package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/douglasjose/sudoku/puzzle"
)

/*

puzzle files

*/

// readPuzzle loads a starting grid from the named file, or from
// standard input when the name is "-".  Two formats are
// accepted:
//
// In the compact format, the file holds one value character per
// cell in reading order, with whitespace ignored: digits for
// values, '.' or '0' for unknown cells, letters for values above
// nine in oversized puzzles.
//
// In the clue format, the first line holds the side length and
// each following line holds a "row col value" triple with
// 0-based coordinates.  Blank lines and lines starting with '#'
// are skipped.
func readPuzzle(name string) (*puzzle.Grid, error) {
	var (
		content []byte
		err     error
	)
	if name == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read puzzle %q: %v", name, err)
	}

	lines := contentLines(string(content))
	if len(lines) == 0 {
		return nil, fmt.Errorf("puzzle file %q is empty", name)
	}
	if isClueFormat(lines) {
		return parseClueLines(name, lines)
	}
	return puzzle.ParseValueString(strings.Join(lines, ""))
}

// isClueFormat reports whether the lines look like the clue
// format: an integer side length followed by three-field clue
// lines.  A value-format file never matches, because its lines
// hold a single run of value characters each.
func isClueFormat(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	if _, err := strconv.Atoi(lines[0]); err != nil {
		return false
	}
	return len(strings.Fields(lines[1])) == 3
}

// contentLines splits file content into trimmed, non-empty,
// non-comment lines.
func contentLines(content string) (lines []string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return
}

// parseClueLines parses the clue format: a side length line
// followed by "row col value" triples.
func parseClueLines(name string, lines []string) (*puzzle.Grid, error) {
	sidelen, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, fmt.Errorf("bad side length %q in puzzle %q: %v", lines[0], name, err)
	}
	var clues []puzzle.Clue
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad clue line %q in puzzle %q: want \"row col value\"", line, name)
		}
		var nums [3]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bad clue line %q in puzzle %q: %v", line, name, err)
			}
			nums[i] = n
		}
		clues = append(clues, puzzle.Clue{Row: nums[0], Col: nums[1], Value: nums[2]})
	}
	return puzzle.NewGrid(sidelen, clues)
}
