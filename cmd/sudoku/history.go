package main

import (
	"fmt"
	"sort"

	"github.com/douglasjose/sudoku/storage"
	"github.com/spf13/cobra"
)

var byLatest bool

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List stored puzzles",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().BoolVarP(&byLatest, "latest", "l", false, "list newest puzzles first instead of sorting by name")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := connectStorage(); err != nil {
		return err
	}
	defer storage.Close()

	infos, err := storage.ListPuzzles()
	if err != nil {
		return err
	}
	if byLatest {
		sort.Sort(storage.ByLatest(infos))
	} else {
		sort.Sort(storage.ByName(infos))
	}

	fmt.Printf("%-12s  %-20s  %4s  %9s  %s\n", "ID", "NAME", "SIZE", "REMAINING", "SOLVED")
	for _, pi := range infos {
		solved := "-"
		if pi.Solved {
			solved = fmt.Sprintf("%d iterations", pi.Iterations)
		}
		fmt.Printf("%-12s  %-20s  %4d  %9d  %s\n",
			shortId(pi.PuzzleId), pi.Name, pi.SideLength, pi.Remaining, solved)
	}
	return nil
}
