package export

import "strings"

// NormalizeFeedURL はフィードURLの表記ゆれを正規化する。
// 前後の空白と末尾の "/", "?", "&" を取り除いたうえで、bearblogの
// フィードURLの揺れを吸収する:
//   - *bearblog.dev/feed
//   - *bearblog.dev/feed/
//   - *bearblog.dev/feed/?type=rss
//
// いずれも *bearblog.dev/feed の形に揃える。
func NormalizeFeedURL(feedURL string) string {
	feedURL = strings.TrimSpace(feedURL)
	feedURL = strings.TrimRight(feedURL, "/")
	feedURL = strings.TrimRight(feedURL, "?")
	feedURL = strings.TrimRight(feedURL, "&")

	if strings.Contains(feedURL, ".bearblog.dev") || strings.Contains(feedURL, "/feed/?type=rss") {
		feedURL, _, _ = strings.Cut(feedURL, "?")
		feedURL = strings.TrimRight(feedURL, "/")
		feedURL = strings.ReplaceAll(feedURL, "/rss", "/feed")
	}

	return feedURL
}
