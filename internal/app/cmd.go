package app

// Command は管理コマンドのサブコマンドを表す。
type Command string

const (
	// CommandExport は直近の投稿があるフィードURLのエクスポートを示す。
	CommandExport Command = "export"
	// CommandPurge はユーザーデータの完全削除を示す。
	CommandPurge Command = "purge"
	// CommandMigrate はデータベースマイグレーションを実行することを示す。
	CommandMigrate Command = "migrate"
	// CommandReap は孤児フィードとその関連データの削除を示す。
	CommandReap Command = "reap"
	// CommandStats はストア全体の統計レポート出力を示す。
	CommandStats Command = "stats"
	// CommandNone は引数なしまたはサポート外のコマンドを示す。
	// サーバーと違いデフォルトで実行してよい操作がないため、使用方法の
	// 表示と非ゼロ終了にフォールバックする。
	CommandNone Command = ""
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandNoneを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandNone
	}

	switch args[0] {
	case "export":
		return CommandExport
	case "purge":
		return CommandPurge
	case "migrate":
		return CommandMigrate
	case "reap":
		return CommandReap
	case "stats":
		return CommandStats
	default:
		return CommandNone
	}
}
