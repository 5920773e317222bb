package maintenance

import (
	"context"
	"fmt"
	"io"

	"github.com/hitoshi/mireadm/internal/model"
)

// StatsFetcher はストア全体の行数カウンタの取得インターフェース。
type StatsFetcher interface {
	SiteStats(ctx context.Context) (*model.SiteStats, error)
}

// StatsReporter はストア全体の統計レポートを出力する。
type StatsReporter struct {
	stats StatsFetcher
}

// NewStatsReporter は新しいStatsReporterを生成する。
func NewStatsReporter(stats StatsFetcher) *StatsReporter {
	return &StatsReporter{stats: stats}
}

// Report は統計カウンタを取得してoutに書き込む。
func (r *StatsReporter) Report(ctx context.Context, out io.Writer) error {
	stats, err := r.stats.SiteStats(ctx)
	if err != nil {
		return fmt.Errorf("統計の取得に失敗しました: %w", err)
	}

	fmt.Fprintf(out, "Total users:  %d\n", stats.TotalUsers)
	fmt.Fprintf(out, "Unique feeds: %d\n", stats.NumUniqueFeeds)
	fmt.Fprintf(out, "Posts:        %d\n", stats.NumPosts)
	fmt.Fprintf(out, "Read posts:   %d\n", stats.NumReadPosts)

	return nil
}
