package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLitePostReadRepo はSQLiteを使用した既読マーカーリポジトリ。
type SQLitePostReadRepo struct {
	db *sql.DB
}

// NewSQLitePostReadRepo はSQLitePostReadRepoを生成する。
func NewSQLitePostReadRepo(db *sql.DB) *SQLitePostReadRepo {
	return &SQLitePostReadRepo{db: db}
}

// CountByUserID は指定ユーザーの既読マーカー数を返す。
func (r *SQLitePostReadRepo) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_read WHERE user_id = ?`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count post reads: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ PostReadRepository = (*SQLitePostReadRepo)(nil)
