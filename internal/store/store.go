package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is a read-only handle on the sw-collector database. The schema
// is owned by the external sw-collector tool; this adapter only issues
// the queries of the schema contract.
type Store struct {
	db *sql.DB
}

// Open opens the sw-collector SQLite database at the given URI.
//
// The connection is configured with:
//   - a 5-second busy timeout for lock contention with the sw-collector
//   - foreign key enforcement
//   - a single pooled connection (SQLite supports one writer at a time)
func Open(uri string) (*Store, error) {
	db, err := sql.Open("sqlite3", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
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

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// LatestWatermark returns the (event ID, epoch) of the most recent
// synchronization tick, newest timestamp first. Fails with sql.ErrNoRows
// in the chain when the events table is empty.
func (s *Store) LatestWatermark(ctx context.Context) (eid, epoch uint32, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, epoch FROM events ORDER BY timestamp DESC
	`).Scan(&eid, &epoch)
	if err != nil {
		return 0, 0, fmt.Errorf("query last event: %w", err)
	}
	return eid, epoch, nil
}

// EnsureSchema creates the sw-collector tables if they do not exist.
// Production databases are provisioned by the sw-collector tool itself;
// this exists for tests and local provisioning. Idempotent.
func (s *Store) EnsureSchema() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
