package dbprep

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/douglasjose/sudoku/puzzle"
	"github.com/jackc/pgx/v5"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

insert sample puzzles

*/

var (
	sampleValues = [][]int{
		{
			4, 0, 0, 0, 0, 3, 5, 0, 2,
			0, 0, 9, 5, 0, 6, 3, 4, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 8,
			0, 0, 0, 0, 3, 4, 8, 6, 0,
			0, 0, 4, 6, 0, 5, 2, 0, 0,
			0, 2, 8, 7, 9, 0, 0, 0, 0,
			9, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 8, 7, 3, 0, 2, 9, 0, 0,
			5, 0, 2, 9, 0, 0, 0, 0, 6,
		},
		{
			0, 1, 0, 5, 0, 6, 0, 2, 0,
			0, 0, 0, 0, 0, 3, 0, 1, 8,
			0, 0, 0, 0, 7, 0, 0, 0, 6,
			0, 0, 5, 0, 0, 0, 0, 3, 0,
			0, 0, 8, 0, 9, 0, 7, 0, 0,
			0, 6, 0, 0, 0, 0, 4, 0, 0,
			5, 0, 0, 0, 4, 0, 0, 0, 0,
			6, 4, 0, 2, 0, 0, 0, 0, 0,
			0, 3, 0, 9, 0, 1, 0, 8, 0,
		},
		{
			9, 0, 0, 4, 5, 0, 0, 0, 8,
			0, 2, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 1, 7, 2, 4, 0, 0,
			0, 7, 9, 0, 0, 0, 6, 8, 0,
			2, 0, 0, 0, 0, 0, 0, 0, 5,
			0, 4, 3, 0, 0, 0, 2, 7, 0,
			0, 0, 8, 3, 2, 5, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 6, 0,
			4, 0, 0, 0, 1, 6, 0, 0, 3,
		},
		{
			9, 4, 8, 0, 5, 0, 2, 0, 0,
			0, 0, 7, 8, 0, 3, 0, 0, 1,
			0, 5, 0, 0, 7, 0, 0, 0, 0,
			0, 7, 0, 0, 0, 0, 3, 0, 0,
			2, 0, 0, 6, 0, 5, 0, 0, 4,
			0, 0, 5, 0, 0, 0, 0, 9, 0,
			0, 0, 0, 0, 6, 0, 0, 1, 0,
			3, 0, 0, 5, 0, 9, 7, 0, 0,
			0, 0, 6, 0, 1, 0, 4, 2, 3,
		},
		{
			1, 0, 3, 0,
			0, 3, 0, 1,
			3, 0, 1, 0,
			0, 1, 0, 3,
		},
	}
	sampleGrids []*puzzle.Grid // see init
	sampleNames []string      // see init
)

// initialize the grids and names from the sample values
func init() {
	sampleGrids = make([]*puzzle.Grid, len(sampleValues))
	for i := range sampleValues {
		g, err := puzzle.NewGridFromValues(sampleValues[i])
		if err != nil {
			panic(fmt.Errorf("Can't happen! Sample puzzle %d is invalid: %v", i, err))
		}
		sampleGrids[i] = g
	}
	sampleNames = make([]string, len(sampleGrids))
	for i := range sampleGrids {
		sampleNames[i] = fmt.Sprintf("sample-%d", i+1)
	}
}

// Create and insert the sample puzzles
func insertSamples(tx pgx.Tx) error {
	ctx := context.Background()

	// idempotency: if the first sample already exists, we are done
	var count int64
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM puzzles "+
		"WHERE name = $1", sampleNames[0])
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Database error looking for puzzle %q: %v", sampleNames[0], err)
	}
	if count > 0 {
		return nil
	}

	// get the timestamp of this load
	now := time.Now()

	// save the puzzles
	for i, g := range sampleGrids {
		gvalues := g.Values()
		values := make([]int32, len(gvalues))
		for i, v := range gvalues {
			values[i] = int32(v) // use 4-byte ints in database
		}
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			g.Signature(), sampleNames[i], int32(g.SideLength()), values, now)
		if err != nil {
			return fmt.Errorf("Database error saving sample puzzle %d: %v", i, err)
		}
	}
	return nil
}

// Delete the sample puzzles
func deleteSamples(tx pgx.Tx) error {
	ctx := context.Background()
	for i, g := range sampleGrids {
		// solutions reference puzzles, so they go first
		_, err := tx.Exec(ctx,
			"DELETE from solutions where puzzleId = $1", g.Signature())
		if err != nil {
			return fmt.Errorf("Database error deleting sample solution %d: %v", i, err)
		}
		_, err = tx.Exec(ctx,
			"DELETE from puzzles where puzzleId = $1", g.Signature())
		if err != nil {
			return fmt.Errorf("Database error deleting sample puzzle %d: %v", i, err)
		}
	}
	return nil
}
