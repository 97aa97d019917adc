package service

import (
	"context"
	"strings"

	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// PricingPlanService manages the alternate price points of a product.
type PricingPlanService interface {
	ListPlans(ctx context.Context, productID uint) ([]model.PricingPlan, error)
	AddPlan(ctx context.Context, productID uint, in PlanInput) (*model.PricingPlan, error)
	UpdatePlan(ctx context.Context, id uint, in PlanInput) (*model.PricingPlan, error)
	DeletePlan(ctx context.Context, id uint) (int64, error)
}

type pricingPlanService struct {
	repo repository.PricingPlanRepository
}

// NewPricingPlanService builds a PricingPlanService.
func NewPricingPlanService(repo repository.PricingPlanRepository) PricingPlanService {
	return &pricingPlanService{repo: repo}
}

func planFromInput(in PlanInput) (*model.PricingPlan, error) {
	if blank(in.Name) {
		return nil, errors.Validation("plan name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return &model.PricingPlan{
		Name:            strings.TrimSpace(in.Name),
		Price:           in.Price,
		Currency:        currency,
		BillingInterval: in.BillingInterval,
	}, nil
}

func (s *pricingPlanService) ListPlans(ctx context.Context, productID uint) ([]model.PricingPlan, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *pricingPlanService) AddPlan(ctx context.Context, productID uint, in PlanInput) (*model.PricingPlan, error) {
	plan, err := planFromInput(in)
	if err != nil {
		return nil, err
	}
	plan.ProductID = productID
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *pricingPlanService) UpdatePlan(ctx context.Context, id uint, in PlanInput) (*model.PricingPlan, error) {
	plan, err := planFromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, plan)
}

func (s *pricingPlanService) DeletePlan(ctx context.Context, id uint) (int64, error) {
	return s.repo.Delete(ctx, id)
}
