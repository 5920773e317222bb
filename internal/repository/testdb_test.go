package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/hitoshi/mireadm/internal/database"
)

// newTestDB はマイグレーション適用済みの実SQLiteデータベースを返す。
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mire_test.db")
	if err := database.RunMigrations(path); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// seedUser はユーザーを1件作成してIDを返す。
func seedUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()

	res, err := db.Exec(
		`INSERT INTO user (username, password) VALUES (?, ?)`,
		username, "hashed-password",
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedFeed はフィードを1件作成してIDを返す。
func seedFeed(t *testing.T, db *sql.DB, url string) int64 {
	t.Helper()

	res, err := db.Exec(`INSERT INTO feed (url) VALUES (?)`, url)
	if err != nil {
		t.Fatalf("failed to seed feed: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedPost は投稿を1件作成してIDを返す。publishedAtは"2006-01-02 15:04:05"形式。
func seedPost(t *testing.T, db *sql.DB, feedID int64, url, publishedAt string) int64 {
	t.Helper()

	res, err := db.Exec(
		`INSERT INTO post (feed_id, title, url, published_at) VALUES (?, ?, ?, ?)`,
		feedID, "title", url, publishedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func seedSubscription(t *testing.T, db *sql.DB, userID, feedID int64) {
	t.Helper()

	if _, err := db.Exec(
		`INSERT INTO subscribe (user_id, feed_id) VALUES (?, ?)`, userID, feedID,
	); err != nil {
		t.Fatalf("failed to seed subscription: %v", err)
	}
}

func seedPostRead(t *testing.T, db *sql.DB, userID, postID int64, hasRead bool) {
	t.Helper()

	if _, err := db.Exec(
		`INSERT INTO post_read (user_id, post_id, has_read) VALUES (?, ?, ?)`,
		userID, postID, hasRead,
	); err != nil {
		t.Fatalf("failed to seed post read: %v", err)
	}
}

// countRows はテーブルの行数を返す。
func countRows(t *testing.T, db *sql.DB, table string) int64 {
	t.Helper()

	var n int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}

var testCtx = context.Background()
