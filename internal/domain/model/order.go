package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentQRIS PaymentMethod = "qris"
)

// 注文ヘッダ。明細はOrderItemが持つ。
// final_amount = total_amount - discount_amount を常に満たす。
type Order struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber    string        `gorm:"type:varchar(30);not null;uniqueIndex" json:"order_number"`
	UserID         int64         `gorm:"not null;index" json:"user_id"`
	TableID        *int64        `gorm:"index" json:"table_id"`
	TotalAmount    int64         `gorm:"not null" json:"total_amount"`
	DiscountAmount int64         `gorm:"not null;default:0" json:"discount_amount"`
	FinalAmount    int64         `gorm:"not null" json:"final_amount"`
	PaymentMethod  PaymentMethod `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	Status         OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes          string        `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
