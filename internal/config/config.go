// Package config は環境変数からの設定読み込みを提供する。
package config

import "os"

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DBPath string

	// Export
	SpamListPath string // 空の場合は埋め込みのデフォルトリストを使用する
}

// デフォルト値。DBPathはmire本体が書き込むデータベースファイルと同じ
// 固定パスを指す。
const (
	DefaultDBPath = "mire.db"
)

// Load は環境変数からConfigを読み込む。
// すべての項目にデフォルト値があるため、エラーは返さない。
func Load() *Config {
	cfg := &Config{}

	cfg.DBPath = getEnvString("MIRE_DB_PATH", DefaultDBPath)
	cfg.SpamListPath = getEnvString("MIRE_SPAM_LIST_PATH", "")

	return cfg
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
