package main

import (
	"fmt"
	"log"
	"time"

	"github.com/douglasjose/sudoku/puzzle"
	"github.com/douglasjose/sudoku/storage"
	"github.com/spf13/cobra"
)

var saveName string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve puzzle-file",
		Short: "Solve a puzzle by deduction",
		Long: `Solve a puzzle by deduction.

The puzzle file holds either one value character per cell in
reading order ('.' or '0' for unknowns), or a side length line
followed by 0-based "row col value" clue lines.  Use "-" to read
from standard input.

Examples:
  sudoku solve daily.sdk
  sudoku solve --save daily-2026-08-31 daily.sdk`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&saveName, "save", "s", "", "store the puzzle and its solution under this name")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readPuzzle(args[0])
	if err != nil {
		return err
	}

	var startGrid *puzzle.Grid
	if saveName != "" {
		if err := connectStorage(); err != nil {
			return err
		}
		defer storage.Close()
		// Solve mutates the grid, so keep the starting point
		startGrid = g.Copy()
		// a stored solution means there is no work to do
		solved, iterations, found, err := storage.LoadSolution(startGrid.Signature())
		if err != nil {
			return err
		}
		if found {
			fmt.Print(solved)
			log.Printf("Already solved in %d iterations (stored).", iterations)
			return nil
		}
	}

	start := time.Now()
	iterations, err := puzzle.Solve(g)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if err := puzzle.Verify(g); err != nil {
		return fmt.Errorf("solver produced a bad grid: %v", err)
	}

	fmt.Print(g)
	log.Printf("Solved in %d iterations (%v).", iterations, elapsed)

	if saveName != "" {
		id, err := storage.SavePuzzle(saveName, startGrid)
		if err != nil {
			return err
		}
		if err := storage.SaveSolution(id, g, iterations, elapsed); err != nil {
			return err
		}
		log.Printf("Stored as %q (id %s).", saveName, shortId(id))
	}
	return nil
}

// shortId returns the displayed prefix of a puzzle id.
func shortId(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
