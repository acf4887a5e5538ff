package main

import (
	"log"

	"github.com/douglasjose/sudoku/puzzle"
	"github.com/spf13/cobra"
)

func init() {
	verifyCmd := &cobra.Command{
		Use:   "verify puzzle-file",
		Short: "Check that a completed puzzle is a valid solution",
		Long: `Check that a completed puzzle is a valid solution.

Every row, column, and sector must contain each value exactly
once.  A puzzle with unknown cells fails verification; solve it
first.`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	g, err := readPuzzle(args[0])
	if err != nil {
		return err
	}
	if err := puzzle.Verify(g); err != nil {
		return err
	}
	log.Printf("Solution verified.")
	return nil
}
