package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	CategoryID  int64     `gorm:"not null;index" json:"category_id"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Popular     bool      `gorm:"not null;default:false" json:"popular"`
	Rating      float64   `gorm:"not null;default:0" json:"rating"`
	Discount    int64     `gorm:"not null;default:0" json:"discount"`
	Stock       int64     `gorm:"not null;default:0" json:"stock"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
