package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Option is an add-on sellable with a product (extra days, storage...).
type Option struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Tag         string              `json:"tag" gorm:"uniqueIndex;not null"`
	Name        string              `json:"name" gorm:"not null"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Unit        string              `json:"unit"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (Option) TableName() string { return "options" }
