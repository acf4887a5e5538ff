package main

import (
	"fmt"
	"log"
	"os"

	"github.com/douglasjose/sudoku/storage"
	"github.com/spf13/cobra"
)

func init() {
	showCmd := &cobra.Command{
		Use:   "show puzzle-file|name-or-id",
		Short: "Display a puzzle without solving it",
		Long: `Display a puzzle without solving it.

The argument is a puzzle file, or the name or id of a stored
puzzle.  For a stored puzzle the stored solution, if any, is
shown as well.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	// a puzzle file needs no storage connection
	if _, err := os.Stat(args[0]); err == nil {
		g, err := readPuzzle(args[0])
		if err != nil {
			return err
		}
		fmt.Print(g)
		return nil
	}

	if err := connectStorage(); err != nil {
		return err
	}
	defer storage.Close()

	id, err := resolvePuzzleId(args[0])
	if err != nil {
		return err
	}
	g, err := storage.LoadPuzzle(id)
	if err != nil {
		return err
	}
	fmt.Print(g)

	solved, iterations, found, err := storage.LoadSolution(id)
	if err != nil {
		return err
	}
	if !found {
		log.Printf("No stored solution.")
		return nil
	}
	fmt.Println()
	fmt.Print(solved)
	log.Printf("Solved in %d iterations.", iterations)
	return nil
}

// resolvePuzzleId turns a command-line argument into a puzzle
// id.  A full hex signature is used as is, anything else is
// looked up as a puzzle name.
func resolvePuzzleId(arg string) (string, error) {
	if isHexId(arg) {
		return arg, nil
	}
	return storage.LookupName(arg)
}

// signatures are 64 hex characters
func isHexId(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
