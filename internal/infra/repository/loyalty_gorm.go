package repository

import (
	"context"
	"errors"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

// AccrueはON CONFLICT upsertの1文で加算まで行う。
// 同一ユーザーの同時注文は行ロックで直列化され、加算は失われない。
func (r *LoyaltyGormRepository) Accrue(ctx context.Context, userID int64, orderAmount int64, visitedAt time.Time) error {
	points := model.PointsForAmount(orderAmount)

	row := model.CustomerLoyalty{
		UserID:      userID,
		Points:      points,
		TotalSpent:  orderAmount,
		TotalOrders: 1,
		Tier:        model.TierForSpent(orderAmount),
		LastVisit:   visitedAt,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":       gorm.Expr("customer_loyalty.points + ?", points),
			"total_spent":  gorm.Expr("customer_loyalty.total_spent + ?", orderAmount),
			"total_orders": gorm.Expr("customer_loyalty.total_orders + 1"),
			// ティアは加算後のtotal_spentで判定する
			"tier": gorm.Expr(
				"CASE WHEN customer_loyalty.total_spent + ? >= ? THEN 'Gold' WHEN customer_loyalty.total_spent + ? >= ? THEN 'Silver' ELSE 'Bronze' END",
				orderAmount, int64(model.GoldThreshold), orderAmount, int64(model.SilverThreshold),
			),
			"last_visit": visitedAt,
			"updated_at": visitedAt,
		}),
	}).Create(&row).Error
}

func (r *LoyaltyGormRepository) FindByUserID(ctx context.Context, userID int64) (model.CustomerLoyalty, error) {
	var l model.CustomerLoyalty
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CustomerLoyalty{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CustomerLoyalty{}, err
	}
	return l, nil
}
