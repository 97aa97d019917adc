package service

import (
	"context"
	"strings"

	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// CategoryService manages service categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) (int64, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	if blank(in.Name) {
		return nil, errors.Validation("category name is required")
	}
	category := &model.Category{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*model.Category, error) {
	if blank(in.Name) {
		return nil, errors.Validation("category name is required")
	}
	return s.repo.Update(ctx, id, &model.Category{Name: strings.TrimSpace(in.Name), Description: in.Description})
}

// DeleteCategory removes the category; its services are kept without a category.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}
