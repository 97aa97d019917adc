package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// PricingPlanRepository defines persistence operations for product pricing plans.
type PricingPlanRepository interface {
	Create(ctx context.Context, plan *model.PricingPlan) error
	ListByProduct(ctx context.Context, productID uint) ([]model.PricingPlan, error)
	FindByID(ctx context.Context, id uint) (*model.PricingPlan, error)
	Update(ctx context.Context, id uint, plan *model.PricingPlan) (*model.PricingPlan, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type pricingPlanRepository struct {
	db *gorm.DB
}

// NewPricingPlanRepository builds a GORM-backed repository.
func NewPricingPlanRepository(db *gorm.DB) PricingPlanRepository {
	return &pricingPlanRepository{db: db}
}

func (r *pricingPlanRepository) Create(ctx context.Context, plan *model.PricingPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *pricingPlanRepository) ListByProduct(ctx context.Context, productID uint) ([]model.PricingPlan, error) {
	var plans []model.PricingPlan
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *pricingPlanRepository) FindByID(ctx context.Context, id uint) (*model.PricingPlan, error) {
	return first[model.PricingPlan](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *pricingPlanRepository) Update(ctx context.Context, id uint, plan *model.PricingPlan) (*model.PricingPlan, error) {
	err := r.db.WithContext(ctx).Model(&model.PricingPlan{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":             plan.Name,
		"price":            plan.Price,
		"currency":         plan.Currency,
		"billing_interval": plan.BillingInterval,
		"updated_at":       time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *pricingPlanRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.PricingPlan{}, id)
	return res.RowsAffected, res.Error
}
