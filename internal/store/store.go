// Package store persists optimize-run history in SQLite, so past runs of the
// same contract and sequence can be listed and compared. The store is an
// optional sink; the snapshot files on disk remain the source of truth.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded interpretation of a sequence against a Yul source.
type Run struct {
	ID            string
	YulFile       string
	Sequence      string
	CreatedAt     time.Time
	SnapshotCount int
}

// SnapshotRow is the stored metadata of one snapshot within a run.
type SnapshotRow struct {
	Index           int
	Step            string
	Status          string
	Prefix          string
	CompilationTime float64
	BytecodeSize    int
}

// Open creates or opens the history database at path. The schema is applied
// on every open; it only uses CREATE TABLE IF NOT EXISTS, so opening an
// existing database is safe.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY and keeps in-memory databases coherent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewRunID returns a time-sortable UUIDv7 run identifier, so listing runs by
// ID also orders them by creation time.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}
