package repository

import (
	"context"
	"errors"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

const orderSelect = "orders.*, u.name AS customer_name, t.number AS table_number"

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (repo.OrderSummary, error) {
	var o repo.OrderSummary
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(orderSelect).
		Joins("LEFT JOIN users u ON orders.user_id = u.id").
		Joins("LEFT JOIN tables t ON orders.table_id = t.id").
		Where("orders.id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.OrderSummary{}, repo.ErrNotFound
	}
	if err != nil {
		return repo.OrderSummary{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListRecent(ctx context.Context, limit int) ([]repo.OrderSummary, error) {
	var items []repo.OrderSummary
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(orderSelect).
		Joins("LEFT JOIN users u ON orders.user_id = u.id").
		Joins("LEFT JOIN tables t ON orders.table_id = t.id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return []repo.OrderSummary{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
