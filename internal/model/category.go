package model

import "time"

// Category groups services. Deleting one detaches its services.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

// CategoryRef is the short form attached to products.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
