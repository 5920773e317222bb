// Package repository はデータアクセス層のインターフェースと実装を提供する。
package repository

import (
	"context"

	"github.com/hitoshi/mireadm/internal/model"
)

// PurgeResult はユーザーデータ完全削除で削除された行数を保持する。
type PurgeResult struct {
	Users         int64
	Subscriptions int64
	PostReads     int64
}

// ReapResult は孤児データ削除で削除された行数を保持する。
type ReapResult struct {
	PostReads int64
	Posts     int64
	Feeds     int64
}

// FeedRepository はフィードの読み取りとメンテナンス操作を提供する。
type FeedRepository interface {
	// RecentFeedURLs はcutoff（"2006-01-02 15:04:05"形式）より新しい
	// 投稿を持つフィードを重複なしで返す。
	RecentFeedURLs(ctx context.Context, cutoff string) ([]model.Feed, error)

	// ReapOrphans は誰も購読していないフィードと、その投稿・既読マーカーを
	// 1トランザクションで削除する。
	ReapOrphans(ctx context.Context) (*ReapResult, error)
}

// UserRepository はユーザーの検索と完全削除を提供する。
type UserRepository interface {
	// FindByUsername は指定ユーザー名のユーザーを取得する。
	// 見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// PurgeByID はユーザー本体・購読・既読マーカーを1トランザクションで
	// 削除する。すべて成功した場合のみコミットされる。
	PurgeByID(ctx context.Context, userID int64) (*PurgeResult, error)
}

// SubscriptionRepository は購読の参照操作を提供する。
type SubscriptionRepository interface {
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// PostReadRepository は既読マーカーの参照操作を提供する。
type PostReadRepository interface {
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// StatsRepository はストア全体の行数カウンタを提供する。
type StatsRepository interface {
	SiteStats(ctx context.Context) (*model.SiteStats, error)
}
