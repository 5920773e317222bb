package database

import (
	"path/filepath"
	"testing"
)

// マイグレーションが全テーブルを作成することを検証
func TestRunMigrations_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mire.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	for _, table := range []string{"user", "feed", "post", "subscribe", "post_read"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not created: %v", table, err)
		}
	}
}

// マイグレーションが冪等であること（2回目はErrNoChangeで正常終了）を検証
func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mire.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("first RunMigrations() error = %v", err)
	}
	if err := RunMigrations(path); err != nil {
		t.Fatalf("second RunMigrations() error = %v", err)
	}
}
