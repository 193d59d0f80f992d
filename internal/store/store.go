// Package store provides the SQLite-backed entity store for flipledger.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an entity id or name does not resolve.
var ErrNotFound = errors.New("not found")

// ErrRoomProjectMismatch is returned when an expense references a room that
// belongs to a different project.
var ErrRoomProjectMismatch = errors.New("room does not belong to project")

// Store wraps the SQLite database holding owners, projects, rooms and
// expenses.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the tracker database at the given path and brings
// the schema up to date.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening tracker db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging tracker db: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Counts returns the number of projects, rooms and expenses in the store.
func (s *Store) Counts() (projects, rooms, expenses int, err error) {
	if err = s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&projects); err != nil {
		return
	}
	if err = s.db.QueryRow("SELECT COUNT(*) FROM rooms").Scan(&rooms); err != nil {
		return
	}
	err = s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&expenses)
	return
}

// Reset removes the database file and recreates an empty schema. The store
// is unusable afterwards; callers reopen with Open.
func Reset(dbPath string) error {
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", dbPath+suffix, err)
		}
	}
	s, err := Open(dbPath)
	if err != nil {
		return err
	}
	return s.Close()
}
