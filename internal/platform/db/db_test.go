package db

import (
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	conn, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("max open conns = %d, want 1", got)
	}
	if _, err := conn.Exec(`CREATE TABLE t (x INTEGER)`); err != nil {
		t.Fatalf("exec: %v", err)
	}
}

func TestOpenPostgresRejectsUnreachable(t *testing.T) {
	// Without the pgx driver registered the open itself fails.
	if _, err := Open("postgres://nobody@127.0.0.1:1/none"); err == nil {
		t.Fatal("expected error")
	}
}
