package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/douglasjose/sudoku/puzzle"
	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

/*

entry points

*/

// guard: run a storage body, converting the panics thrown by the
// execute wrappers into returned errors.
func guard(body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("Caught panic during storage operation: %v", r)
			}
		}
	}()
	body()
	return
}

// SavePuzzle stores a starting grid under the given name and
// returns its id.  Saving a grid that is already stored is a
// no-op that returns the existing id.
func SavePuzzle(name string, g *puzzle.Grid) (id string, err error) {
	pe := newPuzzleEntry(name, g)
	err = guard(func() {
		if !pe.databaseInsert() {
			return
		}
		pe.cacheInsert()
	})
	return pe.PuzzleId, err
}

// LoadPuzzle returns the starting grid stored under the given
// id, checking the cache before the database.
func LoadPuzzle(id string) (*puzzle.Grid, error) {
	var g *puzzle.Grid
	err := guard(func() {
		pe := loadPuzzleEntry(id)
		g = pe.makeGrid()
	})
	return g, err
}

// LookupName returns the id of the puzzle stored under the given
// name.  Names are not cached, so this always hits the database.
func LookupName(name string) (id string, err error) {
	err = guard(func() {
		body := func(tx pgx.Tx) error {
			row := tx.QueryRow(ctx(),
				"SELECT puzzleId FROM puzzles WHERE name = $1", name)
			if err := row.Scan(&id); err != nil {
				return fmt.Errorf("No puzzle named %q: %v", name, err)
			}
			return nil
		}
		pgExecute(body)
	})
	return
}

// SaveSolution records the solved grid for a stored puzzle,
// along with the iteration count and wall-clock time the solve
// took.  Solving the same puzzle again overwrites the record.
func SaveSolution(id string, solved *puzzle.Grid, iterations int, elapsed time.Duration) error {
	se := newSolutionEntry(id, solved, iterations, elapsed)
	return guard(func() {
		se.databaseUpsert()
		se.cacheInsert()
	})
}

// LoadSolution returns the stored solution for a puzzle, if one
// exists, checking the cache before the database.
func LoadSolution(id string) (g *puzzle.Grid, iterations int, found bool, err error) {
	err = guard(func() {
		se := &solutionEntry{PuzzleId: id}
		if !se.cacheLoad() {
			if !se.databaseLoad() {
				return
			}
			se.cacheInsert()
		}
		g = se.makeGrid()
		iterations = int(se.Iterations)
		found = true
	})
	return
}

/*

puzzle info

*/

// A PuzzleInfo is the exported summary of a stored puzzle, as
// listed by history commands.  It merges the puzzle entry with
// its solution entry, if one exists.
type PuzzleInfo struct {
	PuzzleId   string    // unique id for this puzzle
	Name       string    // user-facing name of the puzzle
	SideLength int       // puzzle size
	Remaining  int       // number of unknown cells at the start
	Solved     bool      // whether a solution is stored
	Iterations int       // iterations the stored solve took
	Created    time.Time // time when the puzzle was saved
}

// ListPuzzles returns the summaries of all stored puzzles, in
// database order.  Callers sort with ByName or ByLatest.
func ListPuzzles() (infos []*PuzzleInfo, err error) {
	err = guard(func() {
		body := func(tx pgx.Tx) error {
			rows, err := tx.Query(ctx(),
				"SELECT p.puzzleId, p.name, p.sideLength, p.valueList, p.created, "+
					"s.iterations FROM puzzles p "+
					"LEFT JOIN solutions s ON s.puzzleId = p.puzzleId")
			if err != nil {
				return fmt.Errorf("Failure listing puzzles: %v", err)
			}
			defer rows.Close()
			for rows.Next() {
				var (
					pi     PuzzleInfo
					length int32
					values []int32
					iters  *int32
				)
				err := rows.Scan(&pi.PuzzleId, &pi.Name, &length, &values, &pi.Created, &iters)
				if err != nil {
					return fmt.Errorf("Failure scanning puzzle list: %v", err)
				}
				pi.SideLength = int(length)
				pi.Remaining = countZeroes(values)
				if iters != nil {
					pi.Solved = true
					pi.Iterations = int(*iters)
				}
				infos = append(infos, &pi)
			}
			return rows.Err()
		}
		pgExecute(body)
	})
	return
}

// compute the number of empty squares
func countZeroes(vals []int32) (count int) {
	for _, v := range vals {
		if v == 0 {
			count++
		}
	}
	return
}

// sorting of info sequences by puzzle name
type ByName []*PuzzleInfo

func (pi ByName) Len() int           { return len(pi) }
func (pi ByName) Swap(i, j int)      { pi[i], pi[j] = pi[j], pi[i] }
func (pi ByName) Less(i, j int) bool { return pi[i].Name < pi[j].Name }

// sorting of info sequences by creation time, newest first
type ByLatest []*PuzzleInfo

func (pi ByLatest) Len() int           { return len(pi) }
func (pi ByLatest) Swap(i, j int)      { pi[i], pi[j] = pi[j], pi[i] }
func (pi ByLatest) Less(i, j int) bool { return pi[i].Created.After(pi[j].Created) }

/*

puzzle entries

*/

// A puzzleEntry represents the stored form of a starting grid.
// It is JSON serializable so it can go into the cache as well as
// the database.
type puzzleEntry struct {
	PuzzleId   string // puzzle signature
	Name       string
	SideLength int32
	Values     []int32
}

// newPuzzleEntry - make the entry for a starting grid
func newPuzzleEntry(name string, g *puzzle.Grid) *puzzleEntry {
	return &puzzleEntry{
		PuzzleId:   g.Signature(),
		Name:       name,
		SideLength: int32(g.SideLength()),
		Values:     toInt32(g.Values()),
	}
}

// loadPuzzleEntry first checks the cache, then the database, to
// find the puzzle's entry.  If it loads from the database, it
// caches the result.  Panics if there is no such stored entry.
func loadPuzzleEntry(id string) *puzzleEntry {
	pe := &puzzleEntry{PuzzleId: id}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad()
	pe.cacheInsert()
	return pe
}

// makeGrid: make the grid described in a puzzle entry
func (pe *puzzleEntry) makeGrid() *puzzle.Grid {
	g, e := puzzle.NewGridFromValues(toInt(pe.Values))
	if e != nil {
		panic(fmt.Errorf("Failed to create puzzle %q: %v", pe.PuzzleId, e))
	}
	return g
}

// key: compute the cache key for a puzzleEntry.
func (pe *puzzleEntry) key() string {
	return "PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzleEntry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *puzzleEntry
	err := json.Unmarshal(bytes, &spe)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzleEntry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached puzzleEntry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Panics
// if there is no saved entry with the given id.
func (pe *puzzleEntry) databaseLoad() {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx(),
			"SELECT name, sideLength, valueList FROM puzzles "+
				"WHERE puzzleId = $1", pe.PuzzleId)
		if err := row.Scan(&pe.Name, &pe.SideLength, &pe.Values); err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(body)
}

// cacheInsert: insert a puzzle entry into the cache. Replaces
// any existing entry with the same id.
func (pe *puzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzleEntry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new puzzle entry into the database.
// Returns false, without modifying anything, if there is already
// a saved entry with the same id.
func (pe *puzzleEntry) databaseInsert() (inserted bool) {
	body := func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx(),
			"INSERT INTO puzzles (puzzleId, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
			pe.PuzzleId, pe.Name, pe.SideLength, pe.Values, time.Now())
		if err != nil {
			return fmt.Errorf("Database error saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		inserted = tag.RowsAffected() > 0
		return nil
	}
	pgExecute(body)
	return
}

/*

solution entries

*/

// A solutionEntry represents the stored form of a solved grid.
// There is at most one per stored puzzle.
type solutionEntry struct {
	PuzzleId    string // signature of the starting grid
	Values      []int32
	Iterations  int32
	SolveMillis int64
}

// newSolutionEntry - make the entry for a solved grid
func newSolutionEntry(id string, g *puzzle.Grid, iterations int, elapsed time.Duration) *solutionEntry {
	return &solutionEntry{
		PuzzleId:    id,
		Values:      toInt32(g.Values()),
		Iterations:  int32(iterations),
		SolveMillis: elapsed.Milliseconds(),
	}
}

// makeGrid: make the grid described in a solution entry
func (se *solutionEntry) makeGrid() *puzzle.Grid {
	g, e := puzzle.NewGridFromValues(toInt(se.Values))
	if e != nil {
		panic(fmt.Errorf("Failed to create solution %q: %v", se.PuzzleId, e))
	}
	return g
}

// key: compute the cache key for a solutionEntry.
func (se *solutionEntry) key() string {
	return "SID:" + se.PuzzleId
}

// cacheLoad: load an already cached solution entry.  Returns
// whether the entry was found in the cache.
func (se *solutionEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", se.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solutionEntry %q: %v", se.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var sse *solutionEntry
	err := json.Unmarshal(bytes, &sse)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal solutionEntry %q: %v", se.PuzzleId, err))
	}
	if sse.PuzzleId != se.PuzzleId {
		panic(fmt.Errorf("Cached solutionEntry (id: %q) found for puzzle %q!",
			sse.PuzzleId, se.PuzzleId))
	}
	*se = *sse
	return true
}

// databaseLoad: load a solution entry from the database.
// Returns whether a saved entry with the given id exists.
func (se *solutionEntry) databaseLoad() (found bool) {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx(),
			"SELECT valueList, iterations, solveMillis FROM solutions "+
				"WHERE puzzleId = $1", se.PuzzleId)
		err := row.Scan(&se.Values, &se.Iterations, &se.SolveMillis)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", se.PuzzleId, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

// cacheInsert: insert a solution entry into the cache. Replaces
// any existing entry with the same id.
func (se *solutionEntry) cacheInsert() {
	bytes, e := json.Marshal(se)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solutionEntry %q: %v", se.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", se.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solution entry %q: %v", se.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseUpsert: insert a solution entry into the database,
// replacing any existing entry for the same puzzle.
func (se *solutionEntry) databaseUpsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx(),
			"INSERT INTO solutions (puzzleId, valueList, iterations, solveMillis, solved) "+
				"VALUES ($1, $2, $3, $4, $5) "+
				"ON CONFLICT (puzzleId) DO UPDATE SET "+
				"valueList = $2, iterations = $3, solveMillis = $4, solved = $5",
			se.PuzzleId, se.Values, se.Iterations, se.SolveMillis, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving solution entry %q: %v", se.PuzzleId, err)
		}
		return
	}
	pgExecute(body)
}

/*

value helpers

*/

// use 4-byte ints in the database and the cache
func toInt32(vals []int) []int32 {
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = int32(v)
	}
	return out
}

func toInt(vals []int32) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}
