package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/mireadm/internal/model"
)

// SQLiteUserRepo はSQLiteを使用したユーザーリポジトリ。
type SQLiteUserRepo struct {
	db *sql.DB
}

// NewSQLiteUserRepo はSQLiteUserRepoを生成する。
func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
func (r *SQLiteUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username FROM user WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	return user, nil
}

// PurgeByID はユーザーの全データを1トランザクションで削除する。
// 削除順序: post_read → subscribe → user（外部キー制約のため子から先に消す）。
// 削除は不可逆。途中で失敗した場合は全体がロールバックされ、1行も消えない。
func (r *SQLiteUserRepo) PurgeByID(ctx context.Context, userID int64) (*PurgeResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &PurgeResult{}

	res, err := tx.ExecContext(ctx, `DELETE FROM post_read WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post reads: %w", err)
	}
	if result.PostReads, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM subscribe WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	if result.Subscriptions, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM user WHERE id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if result.Users, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// compile-time interface check
var _ UserRepository = (*SQLiteUserRepo)(nil)
