// Command-line client for sudoku puzzle solving and storage
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/douglasjose/sudoku/storage"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve, verify, and store Sudoku puzzles",
	Long: `A deductive Sudoku solver.

Puzzles are solved by constraint propagation alone: naked
singles, hidden singles, and permutation reduction.  There is no
guessing, so a puzzle the deductions cannot finish is reported as
stuck rather than brute-forced.

Solved puzzles can be kept in storage (Redis in front of
Postgres) and listed or re-displayed later.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connectStorage: open the cache and database connections for
// commands that need them.  The caller should defer
// storage.Close.
func connectStorage() error {
	if _, _, err := storage.Connect(); err != nil {
		return fmt.Errorf("couldn't connect to storage: %v", err)
	}
	return nil
}
