package repository

import (
	"context"
	"errors"

	"warkop/internal/domain/model"
)

// email重複などの一意制約違反
var ErrConflict = errors.New("conflict")

// ユーザーの保存・取得だけを約束
type UserRepository interface {
	// 新規ユーザー作成。email重複はErrConflict。
	Create(ctx context.Context, user *model.User) error
	// メールからユーザーを1件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// role=customerの件数（ダッシュボード用）
	CountCustomers(ctx context.Context) (int64, error)
}
