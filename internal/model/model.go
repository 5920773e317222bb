// Package model はドメインモデルを定義する。
package model

// User はフィードリーダーの登録ユーザーを表す。
// スキーマはmire本体が所有しており、本ツールは読み取りと削除のみ行う。
type User struct {
	ID       int64
	Username string
}

// Feed はポーリング対象のRSS/Atomフィードを表す。
type Feed struct {
	ID  int64
	URL string
}

// Post はフィードから取り込まれた記事を表す。
// PublishedAtは "2006-01-02 15:04:05" 形式の文字列として格納されており、
// 文字列比較がそのまま時刻順比較になる。
type Post struct {
	ID          int64
	FeedID      int64
	Title       string
	URL         string
	PublishedAt string
}

// Subscription はユーザーとフィードの購読関係を表す。
type Subscription struct {
	UserID int64
	FeedID int64
}

// PostRead はユーザーの既読マーカーを表す。
type PostRead struct {
	UserID  int64
	PostID  int64
	HasRead bool
}

// SiteStats はストア全体の行数カウンタ。statsサブコマンドが表示する。
type SiteStats struct {
	TotalUsers     int64
	NumUniqueFeeds int64
	NumPosts       int64
	NumReadPosts   int64
}
