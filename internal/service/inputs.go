package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"backoffice/internal/model"
)

// UserInput carries the editable fields of a user. Password is only read on create.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TagInput carries the editable fields of a tag.
type TagInput struct {
	Name string `json:"name"`
}

// ServiceInput carries the editable fields of a service. TagIDs is the full
// desired tag set and is only applied by Save.
type ServiceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	CategoryID  *uint  `json:"category_id"`
	TagIDs      []uint `json:"tag_ids"`
}

func (in ServiceInput) toModel() *model.Service {
	return &model.Service{
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		CategoryID:  in.CategoryID,
	}
}

// ProductInput carries the editable fields of a product. Services is the full
// desired service set, in display order, and is only applied by Save.
type ProductInput struct {
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	TargetSegment string                  `json:"target_segment"`
	Price         decimal.NullDecimal     `json:"price"`
	PaymentType   model.PaymentType       `json:"payment_type"`
	IsInCarousel  bool                    `json:"is_in_carousel"`
	IsTopProduct  bool                    `json:"is_top_product"`
	Services      []model.ServiceQuantity `json:"services" validate:"dive"`
}

func (in ProductInput) toModel() *model.Product {
	return &model.Product{
		Name:          in.Name,
		Description:   in.Description,
		TargetSegment: in.TargetSegment,
		Price:         in.Price,
		PaymentType:   in.PaymentType,
		IsInCarousel:  in.IsInCarousel,
		IsTopProduct:  in.IsTopProduct,
	}
}

// PlanInput carries the editable fields of a pricing plan.
type PlanInput struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	BillingInterval string          `json:"billing_interval"`
}

// OptionInput carries the editable fields of an option.
type OptionInput struct {
	Tag         string              `json:"tag"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Unit        string              `json:"unit"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
