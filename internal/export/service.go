// Package export は直近の投稿があるフィードURLのエクスポートを提供する。
// エクスポート結果（URL一覧）を標準出力へ、診断情報（件数やドメイン別の
// 重複レポート）を標準エラーへ書き分けることを前提に設計されている。
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/hitoshi/mireadm/internal/model"
	"github.com/hitoshi/mireadm/internal/spam"
)

// cutoffLayout はmire本体がpublished_atに書き込む時刻フォーマット。
const cutoffLayout = "2006-01-02 15:04:05"

// RecentFeedLister は直近の投稿を持つフィードの取得インターフェース。
type RecentFeedLister interface {
	RecentFeedURLs(ctx context.Context, cutoff string) ([]model.Feed, error)
}

// Service は直近アクティブなフィードのエクスポートを行うサービス層。
type Service struct {
	feeds  RecentFeedLister
	filter *spam.Filter
	logger *slog.Logger

	// now はテストから時刻を固定するためのフック。
	now func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(feeds RecentFeedLister, filter *spam.Filter, logger *slog.Logger) *Service {
	return &Service{
		feeds:  feeds,
		filter: filter,
		logger: logger,
		now:    time.Now,
	}
}

// Export はdays日以内に投稿のあったフィードURLを出力する。
// outには正規化・スパム除外・重複排除・辞書順ソート済みのURLを1行ずつ、
// diagには診断情報（カットオフ、件数、複数フィードを持つドメインの一覧）を
// 書き込む。読み取り専用で、リトライは行わない。
func (s *Service) Export(ctx context.Context, days int, out, diag io.Writer) error {
	cutoff := s.now().AddDate(0, 0, -days).Format(cutoffLayout)

	fmt.Fprintf(diag, "Fetching feeds with posts more recent than %s\n", cutoff)

	feeds, err := s.feeds.RecentFeedURLs(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("フィードの取得に失敗しました: %w", err)
	}

	fmt.Fprintf(diag, "Loaded %d spam list entries\n", s.filter.Len())

	// 正規化 → スパム除外 → 重複排除
	seen := make(map[string]struct{})
	var urls []string
	for _, f := range feeds {
		u := NormalizeFeedURL(f.URL)
		if s.filter.Match(u) {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	sort.Strings(urls)

	fmt.Fprintf(diag, "Found %d feeds with posts more recent than %d days\n", len(urls), days)

	for _, u := range urls {
		fmt.Fprintln(out, u)
	}

	s.reportDomains(urls, diag)

	s.logger.Info("feed export completed",
		slog.String("cutoff", cutoff),
		slog.Int("total_feeds", len(feeds)),
		slog.Int("exported_feeds", len(urls)),
	)

	return nil
}

// reportDomains は複数のフィードを持つドメインをdiagに列挙する。
// 同一ドメインに複数フィードがある場合、正規化漏れや重複購読の
// 調査手掛かりになる。
func (s *Service) reportDomains(urls []string, diag io.Writer) {
	byDomain := make(map[string][]string)
	var order []string
	for _, u := range urls {
		domain := domainOf(u)
		if _, ok := byDomain[domain]; !ok {
			order = append(order, domain)
		}
		byDomain[domain] = append(byDomain[domain], u)
	}

	for _, domain := range order {
		feeds := byDomain[domain]
		if len(feeds) <= 1 {
			continue
		}
		fmt.Fprintf(diag, "\n%s\n", domain)
		for _, f := range feeds {
			fmt.Fprintf(diag, "  '%s'\n", f)
		}
	}
}

// domainOf はURLのホスト部を返す。パースできない場合は空文字列。
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
