package models

import "time"

// Review is unique per (user, product); a repeat submission overwrites the
// existing row instead of creating a duplicate.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviewer_product" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	ProductID uint      `gorm:"uniqueIndex:idx_reviewer_product" json:"product_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
