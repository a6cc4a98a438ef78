package repository

import (
	"context"

	"warkop/internal/domain/model"
)

type CategoryRepository interface {
	// 名前順で全件
	List(ctx context.Context) ([]model.Category, error)
}
