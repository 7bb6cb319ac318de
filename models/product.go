package models

import "time"

// Product has no column default on InStock: gorm skips zero-value fields on
// Create when one is set, so a product created out of stock would come back
// in stock. The create handler and seed set the field explicitly.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `json:"image"`
	Category    string    `gorm:"index" json:"category"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
