package model

import "time"

// 注文明細。作成後は不変。
// unit_priceは注文時点のカタログ価格（割引前）のスナップショット。
type OrderItem struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64     `gorm:"not null;index" json:"order_id"`
	ProductID       int64     `gorm:"not null;index" json:"product_id"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	UnitPrice       int64     `gorm:"not null" json:"unit_price"`
	DiscountPercent int64     `gorm:"not null;default:0" json:"discount_percent"`
	TotalPrice      int64     `gorm:"not null" json:"total_price"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// LineDiscountは1明細分の割引額（整数ルピア、切り捨て）。
func LineDiscount(unitPrice, quantity, discountPercent int64) int64 {
	if discountPercent <= 0 {
		return 0
	}
	return unitPrice * quantity * discountPercent / 100
}

// LineTotalは割引適用後の明細合計。
// raw - discount で求めるので、ヘッダ側の
// final = total - discount と必ず一致する。
func LineTotal(unitPrice, quantity, discountPercent int64) int64 {
	return unitPrice*quantity - LineDiscount(unitPrice, quantity, discountPercent)
}
