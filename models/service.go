package models

import (
	"time"
)

// Service is reference data maintained by the admin surface; the engine
// only reads it.
type Service struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Active          bool      `json:"active" gorm:"default:true"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
