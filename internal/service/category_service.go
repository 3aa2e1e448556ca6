package service

import (
	"context"
	"fmt"
	"strings"

	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
)

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Title       string
	Description string
}

// CategoryUpdate carries a partial update; nil fields are left untouched.
type CategoryUpdate struct {
	Title       *string
	Description *string
}

// CategoryService exposes category CRUD.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
	if category.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if category.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, in CategoryUpdate) (*domain.Category, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		category.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	if category.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
