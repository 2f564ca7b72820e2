package engine

import (
	"path/filepath"
	"testing"
)

// TestOpenInMemory verifies that we can open an in-memory SQLite database
// using the modernc.org/sqlite driver and that every statement sees the
// same database.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(x INTEGER)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n); err != nil {
		t.Fatalf("SELECT COUNT failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("COUNT(*) = %d, want 3", n)
	}
	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestOpenFile(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "loc.sqlite"))
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	defer db.Close()

	var dist float64
	if err := db.QueryRow(`SELECT loc_distance(1, 1, 1, 3)`).Scan(&dist); err != nil {
		t.Fatalf("loc_distance query failed: %v", err)
	}
	if dist != 2 {
		t.Fatalf("loc_distance = %v, want 2", dist)
	}
	if got := db.Stats().MaxOpenConnections; got != 0 {
		t.Fatalf("MaxOpenConnections = %d, want unlimited", got)
	}
}
