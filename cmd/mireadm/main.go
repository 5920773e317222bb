package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hitoshi/mireadm/internal/app"
	"github.com/hitoshi/mireadm/internal/model"
)

func main() {
	// カレントディレクトリに.envがあれば読み込む。なければ何もしない。
	_ = godotenv.Load()

	if err := app.Run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		// 使用方法の表示は既に済んでいるため、usageエラーはログに出さない
		if !model.IsUsage(err) {
			slog.Error("command failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
