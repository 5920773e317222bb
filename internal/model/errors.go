// Package model はドメインモデルを定義する。
package model

import "fmt"

// AdminError は管理コマンドの統一エラーフォーマットを表す。
// 終了コード判定に使うコードと運用者向けメッセージを含む。
type AdminError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *AdminError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUserNotFound = "USER_NOT_FOUND"
	ErrCodeUsage        = "USAGE"
)

// NewUserNotFoundError は指定ユーザーが存在しない場合のエラーを生成する。
func NewUserNotFoundError(username string) *AdminError {
	return &AdminError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("user not found: %s", username),
	}
}

// NewUsageError はコマンドライン引数が不正な場合のエラーを生成する。
func NewUsageError(message string) *AdminError {
	return &AdminError{
		Code:    ErrCodeUsage,
		Message: message,
	}
}

// IsUsage はエラーが引数不正によるものかどうかを返す。
func IsUsage(err error) bool {
	ae, ok := err.(*AdminError)
	return ok && ae.Code == ErrCodeUsage
}
