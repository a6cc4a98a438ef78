package repository

import (
	"context"

	"warkop/internal/domain/model"
)

// 顧客名・テーブル番号をJOINした注文の読み取り用
type OrderSummary struct {
	model.Order
	CustomerName string `json:"customer_name"`
	TableNumber  *int   `json:"table_number"`
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (OrderSummary, error)
	// 新しい順にlimit件
	ListRecent(ctx context.Context, limit int) ([]OrderSummary, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
