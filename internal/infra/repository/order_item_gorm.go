package repository

import (
	"context"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	var items []repo.OrderItemDetail
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.*, p.name AS product_name, p.image AS product_image").
		Joins("LEFT JOIN products p ON order_items.product_id = p.id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.created_at asc").
		Scan(&items).Error
	if err != nil {
		return []repo.OrderItemDetail{}, err
	}
	return items, nil
}
