package repository

import (
	"context"
	"errors"

	"warkop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カテゴリ名をJOINした商品の読み取り用
type ProductWithCategory struct {
	model.Product
	CategoryName     string `json:"category_name"`
	CategoryIcon     string `json:"category_icon"`
	CategoryGradient string `json:"category_gradient"`
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// activeな商品一覧。categoryNameが空なら絞り込み無し。
	// popular優先、次に新しい順。
	ListActive(ctx context.Context, categoryName string) ([]ProductWithCategory, error)
	FindActiveByID(ctx context.Context, id int64) (ProductWithCategory, error)
	// activeな商品数（ダッシュボード用）
	CountActive(ctx context.Context) (int64, error)
}
