package repository

import (
	"context"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) Load(ctx context.Context) (repo.DashboardStats, error) {
	var stats repo.DashboardStats

	// 「今日」＝サーバーローカルの0時から翌0時まで
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var sales struct {
		TodaySales    int64
		TodayOrders   int64
		AvgOrderValue float64
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(final_amount), 0) AS today_sales, COUNT(*) AS today_orders, COALESCE(AVG(final_amount), 0) AS avg_order_value").
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Scan(&sales).Error
	if err != nil {
		return repo.DashboardStats{}, err
	}

	stats.TodaySales = sales.TodaySales
	stats.TodayOrders = sales.TodayOrders
	stats.AvgOrderValue = sales.AvgOrderValue

	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("active = ?", true).
		Count(&stats.TotalProducts).Error; err != nil {
		return repo.DashboardStats{}, err
	}

	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return repo.DashboardStats{}, err
	}

	return stats, nil
}
