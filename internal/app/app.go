package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/hitoshi/mireadm/internal/config"
	"github.com/hitoshi/mireadm/internal/database"
	"github.com/hitoshi/mireadm/internal/export"
	"github.com/hitoshi/mireadm/internal/logger"
	"github.com/hitoshi/mireadm/internal/maintenance"
	"github.com/hitoshi/mireadm/internal/model"
	"github.com/hitoshi/mireadm/internal/purge"
	"github.com/hitoshi/mireadm/internal/repository"
	"github.com/hitoshi/mireadm/internal/spam"
)

// Run は管理コマンドのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応する操作を1回だけ
// 実行して返る。argsにはos.Args[1:]を渡す。
// エクスポート結果などのコマンド出力はstdoutへ、診断情報と構造化ログは
// stderrへ書き込む。
func Run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	// ログは最初にセットアップする（設定読み込み前からログを使えるようにする）
	logger.SetupDefault(stderr)

	cfg := config.Load()

	switch cmd := ParseCommand(args); cmd {
	case CommandExport:
		days, err := parseDays(args[1:])
		if err != nil {
			fmt.Fprintln(stderr, "Usage: mireadm export <days>")
			return err
		}
		return runExport(cfg, days, stdout, stderr)
	case CommandPurge:
		if len(args) < 2 || args[1] == "" {
			fmt.Fprintln(stderr, "Usage: mireadm purge <username>")
			return model.NewUsageError("missing username argument")
		}
		return runPurge(cfg, args[1], stdin, stdout)
	case CommandMigrate:
		return runMigrate(cfg)
	case CommandReap:
		return runReap(cfg, stdout)
	case CommandStats:
		return runStats(cfg, stdout)
	default:
		printUsage(stderr)
		return model.NewUsageError("missing or unknown command")
	}
}

// parseDays はexportの日数引数を検証する。非負の整数のみ受け付ける。
func parseDays(args []string) (int, error) {
	if len(args) < 1 {
		return 0, model.NewUsageError("missing days argument")
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return 0, model.NewUsageError(fmt.Sprintf("invalid days argument: %q", args[0]))
	}
	return days, nil
}

// runExport は直近days日以内に投稿のあったフィードURLをエクスポートする。
func runExport(cfg *config.Config, days int, stdout, stderr io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	filter, err := spam.Load(cfg.SpamListPath)
	if err != nil {
		return fmt.Errorf("スパムリストの読み込みに失敗しました: %w", err)
	}

	feedRepo := repository.NewSQLiteFeedRepo(db)
	svc := export.NewService(feedRepo, filter, slog.Default())

	return svc.Export(context.Background(), days, stdout, stderr)
}

// runPurge は指定ユーザーの全データを対話確認のうえ完全削除する。
func runPurge(cfg *config.Config, username string, stdin io.Reader, stdout io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := purge.NewService(
		repository.NewSQLiteUserRepo(db),
		repository.NewSQLiteSubscriptionRepo(db),
		repository.NewSQLitePostReadRepo(db),
		slog.Default(),
	)

	return svc.Run(context.Background(), username, stdin, stdout)
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("db_path", cfg.DBPath),
	)

	if err := database.RunMigrations(cfg.DBPath); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runReap は誰も購読していないフィードとその関連データを削除する。
func runReap(cfg *config.Config, stdout io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	job := maintenance.NewReapJob(repository.NewSQLiteFeedRepo(db), slog.Default())
	result, err := job.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Reaped %d feeds, %d posts, %d read markers\n",
		result.Feeds, result.Posts, result.PostReads)
	return nil
}

// runStats はストア全体の行数カウンタを表示する。
func runStats(cfg *config.Config, stdout io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	reporter := maintenance.NewStatsReporter(repository.NewSQLiteStatsRepo(db))
	return reporter.Report(context.Background(), stdout)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: mireadm <command> [arguments]

Commands:
  export <days>     print feed URLs with posts newer than <days> days
  purge <username>  hard delete all data for a user (interactive)
  migrate           apply schema migrations
  reap              delete orphaned feeds, posts and read markers
  stats             print store-wide row counters`)
}
