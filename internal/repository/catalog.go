package repository

import (
	"context"

	"inventory-api/internal/domain"
)

// CategoryRepository exposes persistence operations for categories.
type CategoryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Category, error)
	// GetMany returns the categories that exist among ids, keyed by id.
	GetMany(ctx context.Context, ids []string) (map[string]domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// ProductRepository exposes persistence operations for products.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
