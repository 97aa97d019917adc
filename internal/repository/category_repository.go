package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// CategoryRepository defines persistence operations for service categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uint, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	return first[model.Category](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	return first[model.Category](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *categoryRepository) Update(ctx context.Context, id uint, category *model.Category) (*model.Category, error) {
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"updated_at":  time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete removes the category; the schema nulls category_id on its services.
func (r *categoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	return res.RowsAffected, res.Error
}
