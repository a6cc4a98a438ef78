package repository

import (
	"context"

	"warkop/internal/domain/model"
)

type TableRepository interface {
	// number順で全件
	List(ctx context.Context) ([]model.Table, error)
}
