// Clear and re-initialize the sudoku storage system
package main

import (
	"log"

	"github.com/douglasjose/sudoku/dbprep"
)

func main() {
	log.Printf("Removing existing data storage and cache...")
	if err := dbprep.ReinitializeAll(); err != nil {
		log.Fatalf("Couldn't clear storage: %v", err)
	}
	log.Printf("Database re-initialized.")
}
