package service

import (
	"context"
	"strings"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// OptionService manages add-on options and their attachment to products.
type OptionService interface {
	CreateOption(ctx context.Context, in OptionInput) (*model.Option, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
	UpdateOption(ctx context.Context, id uint, in OptionInput) (*model.Option, error)
	DeleteOption(ctx context.Context, id uint) (int64, error)

	OptionsForProduct(ctx context.Context, productID uint) ([]model.Option, error)
	AddOptionToProduct(ctx context.Context, productID, optionID uint) error
	RemoveOptionFromProduct(ctx context.Context, productID, optionID uint) (int64, error)
}

type optionService struct {
	options  repository.OptionRepository
	products repository.ProductRepository
}

// NewOptionService builds an OptionService.
func NewOptionService(options repository.OptionRepository, products repository.ProductRepository) OptionService {
	return &optionService{options: options, products: products}
}

func (in OptionInput) toModel() *model.Option {
	return &model.Option{
		Tag:         strings.TrimSpace(in.Tag),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
	}
}

func (s *optionService) CreateOption(ctx context.Context, in OptionInput) (*model.Option, error) {
	option := in.toModel()
	if err := s.options.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *optionService) ListOptions(ctx context.Context) ([]model.Option, error) {
	return s.options.List(ctx)
}

func (s *optionService) UpdateOption(ctx context.Context, id uint, in OptionInput) (*model.Option, error) {
	return s.options.Update(ctx, id, in.toModel())
}

func (s *optionService) DeleteOption(ctx context.Context, id uint) (int64, error) {
	return s.options.Delete(ctx, id)
}

func (s *optionService) OptionsForProduct(ctx context.Context, productID uint) ([]model.Option, error) {
	return s.products.ListOptions(ctx, productID)
}

func (s *optionService) AddOptionToProduct(ctx context.Context, productID, optionID uint) error {
	return s.products.AddOption(ctx, productID, optionID)
}

func (s *optionService) RemoveOptionFromProduct(ctx context.Context, productID, optionID uint) (int64, error) {
	return s.products.RemoveOption(ctx, productID, optionID)
}
