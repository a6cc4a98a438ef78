package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"github.com/rs/zerolog"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ユーザー向けの汎用サーバーエラー。内部詳細はログにだけ出す。
const msgServerError = "Terjadi kesalahan server"

type CatalogUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	tables     repo.TableRepository
	log        zerolog.Logger
}

// DI
func NewCatalogUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	tables repo.TableRepository,
	log zerolog.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		products:   products,
		categories: categories,
		tables:     tables,
		log:        log,
	}
}

type CategoryOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
}

// ListCategoriesは先頭に「Semua」（絞り込み無し）を足して返す。
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]CategoryOutput, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("list categories failed")
		return nil, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	out := make([]CategoryOutput, 0, len(cats)+1)
	out = append(out, CategoryOutput{
		ID:       0,
		Name:     model.CategoryAll,
		Icon:     "✨",
		Gradient: "from-purple-500 to-pink-500",
	})
	for _, c := range cats {
		out = append(out, CategoryOutput{
			ID:       c.ID,
			Name:     c.Name,
			Icon:     c.Icon,
			Gradient: c.Gradient,
		})
	}
	return out, nil
}

type ProductOutput struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Popular     bool    `json:"popular"`
	Rating      float64 `json:"rating"`
	Discount    int64   `json:"discount"`
	Stock       int64   `json:"stock"`
}

// ListProductsはactiveな商品を返す。
// categoryが空か「Semua」なら全件。
func (u *CatalogUsecase) ListProducts(ctx context.Context, category string) ([]ProductOutput, error) {
	category = strings.TrimSpace(category)
	if category == model.CategoryAll {
		category = ""
	}

	products, err := u.products.ListActive(ctx, category)
	if err != nil {
		u.log.Error().Err(err).Str("category", category).Msg("list products failed")
		return nil, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	out := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOutput(p))
	}
	return out, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindActiveByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error().Err(err).Int64("product_id", id).Msg("find product failed")
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	return toProductOutput(p), nil
}

func (u *CatalogUsecase) ListTables(ctx context.Context) ([]model.Table, error) {
	tables, err := u.tables.List(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("list tables failed")
		return nil, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	return tables, nil
}

func toProductOutput(p repo.ProductWithCategory) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.CategoryName,
		Image:       p.Image,
		Popular:     p.Popular,
		Rating:      p.Rating,
		Discount:    p.Discount,
		Stock:       p.Stock,
	}
}
