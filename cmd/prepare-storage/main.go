// Initialize the sudoku storage system
package main

import (
	"log"

	"github.com/douglasjose/sudoku/dbprep"
)

func main() {
	log.Printf("Preparing data storage...")
	if err := dbprep.EnsureData(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	log.Printf("Database ready.")
}
