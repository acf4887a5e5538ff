package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/douglasjose/sudoku/dbprep"
)

func TestClearStorage(t *testing.T) {
	os.Setenv("DBPREP_PATH", filepath.Join("..", "..", "dbprep", "migrations"))
	if err := dbprep.ClearCache(); err != nil {
		t.Skipf("No cache available: %v", err)
	}
	if _, err := dbprep.SchemaVersion(); err != nil {
		t.Skipf("No database available: %v", err)
	}
	if err := dbprep.ReinitializeAll(); err != nil {
		t.Errorf("%v", err)
	}
}
