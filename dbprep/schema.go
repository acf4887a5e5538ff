package dbprep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// figure out the golang-migrate parameters
func getMigrateParams() (url string, path string) {
	url = os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	path = os.Getenv("DBPREP_PATH")
	if path == "" {
		if fi, err := os.Stat(filepath.Join("dbprep", "migrations")); err == nil && fi.IsDir() {
			// running from root directory
			path = filepath.Join("dbprep", "migrations")
		} else {
			path = "migrations"
		}
	}
	return
}

// newMigrator: open a migrator over the migration files and the
// target database.  The caller must close it.
func newMigrator() (*migrate.Migrate, error) {
	url, path := getMigrateParams()
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open migrations at %q against %q: %v", path, url, err)
	}
	return m, nil
}

//SchemaUp creates the database with the right schema
func SchemaUp() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

//SchemaDown tears down the database
func SchemaDown() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

//SchemaVersion returns the version of the database
func SchemaVersion() (uint, error) {
	m, err := newMigrator()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("Database schema version %d is dirty", version)
	}
	return version, nil
}
