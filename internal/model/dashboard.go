package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentProductsLimit is how many products the dashboard lists.
const RecentProductsLimit = 5

// RecentProduct is the dashboard summary of a product.
type RecentProduct struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"created_at"`
	Price     decimal.NullDecimal `json:"price"`
}

// DashboardStats aggregates catalog counts for the home screen.
type DashboardStats struct {
	TotalProducts  int64           `json:"totalProducts"`
	TotalUsers     int64           `json:"totalUsers"`
	TotalServices  int64           `json:"totalServices"`
	RecentProducts []RecentProduct `json:"recentProducts"`
}
