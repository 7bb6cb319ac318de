package models

import "time"

// WishlistItem marks a product as saved by a user. Membership is the whole
// point, so the (user, product) pair is unique.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
