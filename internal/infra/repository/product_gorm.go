package repository

import (
	"context"
	"errors"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

const productSelect = "products.*, c.name AS category_name, c.icon AS category_icon, c.gradient AS category_gradient"

func (r *ProductGormRepository) ListActive(ctx context.Context, categoryName string) ([]repo.ProductWithCategory, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(productSelect).
		Joins("LEFT JOIN categories c ON products.category_id = c.id").
		Where("products.active = ?", true)

	if categoryName != "" {
		q = q.Where("c.name = ?", categoryName)
	}

	var items []repo.ProductWithCategory
	err := q.Order("products.popular DESC, products.created_at DESC").Scan(&items).Error
	if err != nil {
		return []repo.ProductWithCategory{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) FindActiveByID(ctx context.Context, id int64) (repo.ProductWithCategory, error) {
	var p repo.ProductWithCategory
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select(productSelect).
		Joins("LEFT JOIN categories c ON products.category_id = c.id").
		Where("products.id = ? AND products.active = ?", id, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ProductWithCategory{}, repo.ErrNotFound
	}
	if err != nil {
		return repo.ProductWithCategory{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("active = ?", true).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
