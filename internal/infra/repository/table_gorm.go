package repository

import (
	"context"

	"warkop/internal/domain/model"

	"gorm.io/gorm"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) List(ctx context.Context) ([]model.Table, error) {
	var items []model.Table
	err := r.db.WithContext(ctx).Order("number asc").Find(&items).Error
	if err != nil {
		return []model.Table{}, err
	}
	return items, nil
}
