// Package purge はユーザーデータの完全削除（ハードデリート）を提供する。
// 削除は不可逆であり、本人からの削除依頼があった場合にのみ手動で実行する。
package purge

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hitoshi/mireadm/internal/model"
	"github.com/hitoshi/mireadm/internal/repository"
)

// UserRepository はユーザーの検索と完全削除のインターフェース。
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	PurgeByID(ctx context.Context, userID int64) (*repository.PurgeResult, error)
}

// SubscriptionCounter は購読数の取得インターフェース。
type SubscriptionCounter interface {
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// PostReadCounter は既読マーカー数の取得インターフェース。
type PostReadCounter interface {
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// Preview は削除前にユーザーへ提示する対象データの概要。
// 行数は削除実行前に数えたものであり、確認表示の正確性がこの値に依存する。
type Preview struct {
	User          *model.User
	Subscriptions int64
	PostReads     int64
}

// Service はユーザーデータ完全削除のサービス層。
type Service struct {
	users     UserRepository
	subs      SubscriptionCounter
	postReads PostReadCounter
	logger    *slog.Logger
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	users UserRepository,
	subs SubscriptionCounter,
	postReads PostReadCounter,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:     users,
		subs:      subs,
		postReads: postReads,
		logger:    logger,
	}
}

// Preview は削除対象の概要を取得する。何も削除しない。
// ユーザーが存在しない場合はUSER_NOT_FOUNDエラーを返す。
func (s *Service) Preview(ctx context.Context, username string) (*Preview, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(username)
	}

	subCount, err := s.subs.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("購読数の取得に失敗しました: %w", err)
	}

	readCount, err := s.postReads.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("既読マーカー数の取得に失敗しました: %w", err)
	}

	return &Preview{
		User:          user,
		Subscriptions: subCount,
		PostReads:     readCount,
	}, nil
}

// Execute はユーザーの全データを削除する。確認済みであることが前提。
// 削除は1トランザクションで行われ、すべて成功した場合のみコミットされる。
func (s *Service) Execute(ctx context.Context, user *model.User) (*repository.PurgeResult, error) {
	operationID := uuid.NewString()

	s.logger.Info("ユーザーデータの完全削除を開始します",
		slog.String("operation_id", operationID),
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	result, err := s.users.PurgeByID(ctx, user.ID)
	if err != nil {
		s.logger.Error("ユーザーデータの完全削除に失敗しました",
			slog.String("operation_id", operationID),
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("ユーザーデータの削除に失敗しました: %w", err)
	}

	s.logger.Info("ユーザーデータの完全削除が完了しました",
		slog.String("operation_id", operationID),
		slog.Int64("user_id", user.ID),
		slog.Int64("deleted_users", result.Users),
		slog.Int64("deleted_subscriptions", result.Subscriptions),
		slog.Int64("deleted_post_reads", result.PostReads),
	)

	return result, nil
}

// Run は対話フロー全体を実行する。
// 対象データの概要を表示し、確認入力が "yes" の場合のみ削除する。
// それ以外の入力ではデータに一切触れない。
func (s *Service) Run(ctx context.Context, username string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "User: %s\n", username)

	preview, err := s.Preview(ctx, username)
	if err != nil {
		if ae, ok := err.(*model.AdminError); ok && ae.Code == model.ErrCodeUserNotFound {
			fmt.Fprintln(out, "User not found")
		}
		return err
	}

	fmt.Fprintf(out, "User ID: %d\n", preview.User.ID)
	fmt.Fprintf(out, "\nFound %d subscriptions for user %s\n", preview.Subscriptions, username)
	fmt.Fprintf(out, "\nFound %d post reads for user %s\n", preview.PostReads, username)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Do you want to delete all data for this user?")

	confirmed, err := Confirm(in, out)
	if err != nil {
		return err
	}

	if !confirmed {
		fmt.Fprintln(out, "Data not deleted")
		return nil
	}

	if _, err := s.Execute(ctx, preview.User); err != nil {
		return err
	}

	fmt.Fprintln(out, "Data deleted")
	return nil
}
