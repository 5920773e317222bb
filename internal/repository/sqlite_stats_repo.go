package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/mireadm/internal/model"
)

// SQLiteStatsRepo はSQLiteを使用した統計リポジトリ。
type SQLiteStatsRepo struct {
	db *sql.DB
}

// NewSQLiteStatsRepo はSQLiteStatsRepoを生成する。
func NewSQLiteStatsRepo(db *sql.DB) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: db}
}

// SiteStats はストア全体の行数カウンタを取得する。
func (r *SQLiteStatsRepo) SiteStats(ctx context.Context) (*model.SiteStats, error) {
	stats := &model.SiteStats{}

	queries := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM user`, &stats.TotalUsers},
		{`SELECT COUNT(DISTINCT url) FROM feed`, &stats.NumUniqueFeeds},
		{`SELECT COUNT(*) FROM post`, &stats.NumPosts},
		{`SELECT COUNT(*) FROM post_read WHERE has_read = 1`, &stats.NumReadPosts},
	}
	for _, q := range queries {
		if err := r.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to query site stats: %w", err)
		}
	}

	return stats, nil
}

// compile-time interface check
var _ StatsRepository = (*SQLiteStatsRepo)(nil)
