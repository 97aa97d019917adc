package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType tells how a product price is charged.
type PaymentType string

const (
	PaymentTypeOneTime PaymentType = "one_time"
	PaymentTypeMonthly PaymentType = "monthly"
)

// Valid reports whether p is empty or one of the known payment types.
func (p PaymentType) Valid() bool {
	return p == "" || p == PaymentTypeOneTime || p == PaymentTypeMonthly
}

// CarouselLimit is the number of products the showcase carousel can hold.
const CarouselLimit = 5

// Product is a commercial package of services.
type Product struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	Name          string              `json:"name" gorm:"not null"`
	Description   string              `json:"description"`
	TargetSegment string              `json:"target_segment"`
	IsInCarousel  bool                `json:"is_in_carousel"`
	IsTopProduct  bool                `json:"is_top_product"`
	Price         decimal.NullDecimal `json:"price"`
	PaymentType   PaymentType         `json:"payment_type"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// ProductServiceLine is a service as included in a product, with its volume.
type ProductServiceLine struct {
	ServiceID    uint    `json:"service_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	CategoryID   *uint   `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Quantity     int     `json:"quantity"`
	DisplayOrder int     `json:"display_order"`
}

// ProductDetail is a product with everything linked to it.
type ProductDetail struct {
	Product
	Services   []ProductServiceLine `json:"services"`
	Tags       []Tag                `json:"tags"`
	Categories []CategoryRef        `json:"categories"`
	Plans      []PricingPlan        `json:"plans"`
	Options    []Option             `json:"options"`
}

// Showcase splits products into the sections of the storefront highlight page.
type Showcase struct {
	Carousel []ProductDetail `json:"carousel"`
	Top      []ProductDetail `json:"top"`
	Others   []ProductDetail `json:"others"`
}
