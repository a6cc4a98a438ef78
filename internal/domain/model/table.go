package model

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// 店内のテーブル
type Table struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Number    int         `gorm:"not null;uniqueIndex" json:"number"`
	Capacity  int         `gorm:"not null" json:"capacity"`
	Location  string      `gorm:"type:varchar(100)" json:"location"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Table) TableName() string { return "tables" }
