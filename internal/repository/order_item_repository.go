package repository

import (
	"context"

	"warkop/internal/domain/model"
)

// 商品名・画像をJOINした明細の読み取り用
type OrderItemDetail struct {
	model.OrderItem
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderItemDetail, error)
}
