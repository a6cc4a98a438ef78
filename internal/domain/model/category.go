package model

import "time"

// メニューのカテゴリ（静的な参照データ）
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"`
	Gradient  string    `gorm:"type:varchar(100)" json:"gradient"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// フィルタ無しを意味するカテゴリ名（"All"）
const CategoryAll = "Semua"
