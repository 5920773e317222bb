// Package maintenance はストアの手動メンテナンス操作を提供する。
// 誰も購読していないフィードの掃除と、全体統計のレポートを含む。
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/mireadm/internal/repository"
)

// OrphanReaper は孤児データ削除のインターフェース。
type OrphanReaper interface {
	ReapOrphans(ctx context.Context) (*repository.ReapResult, error)
}

// ReapJob は孤児フィードとその投稿・既読マーカーを削除するジョブ。
// 冪等な削除処理を保証する。削除対象がない場合でもエラーにならない。
type ReapJob struct {
	feeds  OrphanReaper
	logger *slog.Logger
}

// NewReapJob は新しいReapJobを生成する。
func NewReapJob(feeds OrphanReaper, logger *slog.Logger) *ReapJob {
	return &ReapJob{feeds: feeds, logger: logger}
}

// Run は孤児データを削除し、削除された行数を返す。
func (j *ReapJob) Run(ctx context.Context) (*repository.ReapResult, error) {
	start := time.Now()
	operationID := uuid.NewString()

	result, err := j.feeds.ReapOrphans(ctx)
	if err != nil {
		j.logger.Error("孤児データ削除ジョブの実行に失敗しました",
			slog.String("operation_id", operationID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("孤児データ削除の実行に失敗: %w", err)
	}

	duration := time.Since(start)
	j.logger.Info("孤児データ削除ジョブが完了しました",
		slog.String("operation_id", operationID),
		slog.Int64("deleted_feeds", result.Feeds),
		slog.Int64("deleted_posts", result.Posts),
		slog.Int64("deleted_post_reads", result.PostReads),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return result, nil
}
