package repository

import (
	"context"
	"time"

	"warkop/internal/domain/model"
)

type LoyaltyRepository interface {
	// 注文確定時の累積更新。user_idキーのupsertで、
	// 加算はSQL側で行う（read-modify-writeしない）。
	Accrue(ctx context.Context, userID int64, orderAmount int64, visitedAt time.Time) error
	// 行が無ければErrNotFound
	FindByUserID(ctx context.Context, userID int64) (model.CustomerLoyalty, error)
}
