package model

import "time"

// Service is an atomic deliverable (audit day, SOC month, support ticket...).
// It has no price of its own; products bundle services with a quantity.
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	CategoryID  *uint     `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "services" }

// ServiceRow is a service joined with its category label.
type ServiceRow struct {
	Service
	CategoryName *string `json:"category_name"`
}

// ServiceDetail is a service row enriched with its tags.
type ServiceDetail struct {
	ServiceRow
	Tags []Tag `json:"tags"`
}
