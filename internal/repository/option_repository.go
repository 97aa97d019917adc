package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// OptionRepository defines persistence operations for product options.
type OptionRepository interface {
	Create(ctx context.Context, option *model.Option) error
	List(ctx context.Context) ([]model.Option, error)
	FindByID(ctx context.Context, id uint) (*model.Option, error)
	Update(ctx context.Context, id uint, option *model.Option) (*model.Option, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type optionRepository struct {
	db *gorm.DB
}

// NewOptionRepository builds a GORM-backed repository.
func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(ctx context.Context, option *model.Option) error {
	q := omitBlank(r.db.WithContext(ctx), map[string]string{"tag": option.Tag, "name": option.Name})
	return q.Create(option).Error
}

func (r *optionRepository) List(ctx context.Context) ([]model.Option, error) {
	var options []model.Option
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *optionRepository) FindByID(ctx context.Context, id uint) (*model.Option, error) {
	return first[model.Option](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *optionRepository) Update(ctx context.Context, id uint, option *model.Option) (*model.Option, error) {
	err := r.db.WithContext(ctx).Model(&model.Option{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tag":         nullIfEmpty(option.Tag),
		"name":        nullIfEmpty(option.Name),
		"description": option.Description,
		"price":       option.Price,
		"unit":        option.Unit,
		"updated_at":  time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *optionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Option{}, id)
	return res.RowsAffected, res.Error
}
