package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/mireadm/internal/model"
)

// SQLiteFeedRepo はSQLiteを使用したフィードリポジトリ。
type SQLiteFeedRepo struct {
	db *sql.DB
}

// NewSQLiteFeedRepo はSQLiteFeedRepoを生成する。
func NewSQLiteFeedRepo(db *sql.DB) *SQLiteFeedRepo {
	return &SQLiteFeedRepo{db: db}
}

// RecentFeedURLs はcutoffより新しい投稿を1件以上持つフィードを返す。
// published_atは"2006-01-02 15:04:05"形式の文字列として格納されているため、
// 文字列比較がそのまま時刻順比較になる。
func (r *SQLiteFeedRepo) RecentFeedURLs(ctx context.Context, cutoff string) ([]model.Feed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT f.id, f.url
		FROM feed f
		JOIN post p ON f.id = p.feed_id
		WHERE p.published_at > ?`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent feeds: %w", err)
	}
	defer rows.Close()

	var feeds []model.Feed
	for rows.Next() {
		var f model.Feed
		if err := rows.Scan(&f.ID, &f.URL); err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		feeds = append(feeds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feed rows: %w", err)
	}

	return feeds, nil
}

// ReapOrphans は誰も購読していないフィードとその投稿・既読マーカーを削除する。
// 外部キー制約に違反しないよう、既読マーカー → 投稿 → フィードの順に
// 削除し、全体を1トランザクションでコミットする。冪等。
func (r *SQLiteFeedRepo) ReapOrphans(ctx context.Context) (*ReapResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &ReapResult{}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM post_read
		WHERE post_id IN (
			SELECT id FROM post
			WHERE feed_id NOT IN (SELECT feed_id FROM subscribe)
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete orphaned post reads: %w", err)
	}
	if result.PostReads, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `
		DELETE FROM post
		WHERE feed_id NOT IN (SELECT feed_id FROM subscribe)`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete orphaned posts: %w", err)
	}
	if result.Posts, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `
		DELETE FROM feed
		WHERE id NOT IN (SELECT feed_id FROM subscribe)`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete orphaned feeds: %w", err)
	}
	if result.Feeds, err = res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// compile-time interface check
var _ FeedRepository = (*SQLiteFeedRepo)(nil)
