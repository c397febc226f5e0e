package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// openSeeded creates a database with the sw-collector schema applied.
func openSeeded(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "collector.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return s
}

func mustExec(t *testing.T, s *Store, query string, args ...any) {
	t.Helper()
	if _, err := s.db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	if _, err := Open("/nonexistent/dir/collector.db"); err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	s := openSeeded(t)

	for i := 0; i < 3; i++ {
		if err := s.EnsureSchema(); err != nil {
			t.Fatalf("EnsureSchema() iteration %d failed: %v", i, err)
		}
	}

	tables := []string{"events", "sw_identifiers", "sw_events"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent EnsureSchema: %v", table, err)
		}
	}
}

func TestLatestWatermark_EmptyEventsTable(t *testing.T) {
	s := openSeeded(t)

	_, _, err := s.LatestWatermark(context.Background())
	if err == nil {
		t.Fatal("LatestWatermark() on empty events table should fail")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("LatestWatermark() error = %v, want sql.ErrNoRows in chain", err)
	}
}

func TestLatestWatermark_NewestTimestampWins(t *testing.T) {
	s := openSeeded(t)

	mustExec(t, s, "INSERT INTO events (id, epoch, timestamp) VALUES (1, 11, '2024-05-01T10:00:00Z')")
	mustExec(t, s, "INSERT INTO events (id, epoch, timestamp) VALUES (2, 11, '2024-05-03T10:00:00Z')")
	mustExec(t, s, "INSERT INTO events (id, epoch, timestamp) VALUES (3, 11, '2024-05-02T10:00:00Z')")

	eid, epoch, err := s.LatestWatermark(context.Background())
	if err != nil {
		t.Fatalf("LatestWatermark() failed: %v", err)
	}
	if eid != 2 || epoch != 11 {
		t.Errorf("LatestWatermark() = (%d, %d), want (2, 11)", eid, epoch)
	}
}
