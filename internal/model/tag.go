package model

import "time"

// Tag is a free label attachable to services and products.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string { return "tags" }
