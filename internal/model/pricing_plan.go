package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency applies to plans created without a currency.
const DefaultCurrency = "EUR"

// PricingPlan is an alternate price point of a product.
type PricingPlan struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ProductID       uint            `json:"product_id" gorm:"not null;index"`
	Name            string          `json:"name" gorm:"not null"`
	Price           decimal.Decimal `json:"price" gorm:"not null"`
	Currency        string          `json:"currency"`
	BillingInterval string          `json:"billing_interval"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (PricingPlan) TableName() string { return "pricing_plans" }
