package service

import (
	"context"
	"fmt"
	"strings"

	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
)

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	CategoryID  string
	Price       float64
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	CategoryID  *string
	Price       *float64
}

// ProductService exposes product CRUD. Reads and updates return products with
// their category looked up in a second query.
type ProductService interface {
	List(ctx context.Context) ([]domain.ProductView, error)
	Get(ctx context.Context, id string) (*domain.ProductView, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductUpdate) (*domain.ProductView, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{
		products:   products,
		categories: categories,
	}
}

func (s *productService) List(ctx context.Context) ([]domain.ProductView, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, products)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.ProductView, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveOne(ctx, *product)
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  strings.TrimSpace(in.CategoryID),
		Price:       in.Price,
	}
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.CategoryID == "" {
		return nil, fmt.Errorf("%w: categoryId is required", ErrValidation)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id string, in ProductUpdate) (*domain.ProductView, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.CategoryID != nil {
		product.CategoryID = strings.TrimSpace(*in.CategoryID)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if product.CategoryID == "" {
		return nil, fmt.Errorf("%w: categoryId cannot be empty", ErrValidation)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.resolveOne(ctx, *product)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *productService) resolveOne(ctx context.Context, product domain.Product) (*domain.ProductView, error) {
	views, err := s.resolve(ctx, []domain.Product{product})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *productService) resolve(ctx context.Context, products []domain.Product) ([]domain.ProductView, error) {
	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}

	categories, err := s.categories.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}

	views := make([]domain.ProductView, len(products))
	for i, p := range products {
		views[i] = domain.ProductView{Product: p}
		if c, ok := categories[p.CategoryID]; ok {
			views[i].Category = &c
		}
	}
	return views, nil
}
