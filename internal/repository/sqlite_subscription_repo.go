package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteSubscriptionRepo はSQLiteを使用した購読リポジトリ。
type SQLiteSubscriptionRepo struct {
	db *sql.DB
}

// NewSQLiteSubscriptionRepo はSQLiteSubscriptionRepoを生成する。
func NewSQLiteSubscriptionRepo(db *sql.DB) *SQLiteSubscriptionRepo {
	return &SQLiteSubscriptionRepo{db: db}
}

// CountByUserID は指定ユーザーの購読数を返す。
func (r *SQLiteSubscriptionRepo) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subscribe WHERE user_id = ?`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ SubscriptionRepository = (*SQLiteSubscriptionRepo)(nil)
