package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Coupon codes are normalized to uppercase on every read and write.
// UsageLimit 0 means unlimited; ExpiresAt nil means never expires.
// IsActive carries no column default: gorm skips zero-value fields on Create
// when one is set, which would silently activate a coupon created inactive.
// The create handler sets it explicitly instead.
type Coupon struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Code          string       `gorm:"unique;not null" json:"code"`
	DiscountType  DiscountType `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue float64      `gorm:"not null" json:"discount_value"`
	MinPurchase   float64      `json:"min_purchase"`
	MaxDiscount   float64      `json:"max_discount"`
	UsageLimit    int          `json:"usage_limit"`
	UsedCount     int          `json:"used_count"`
	ExpiresAt     *time.Time   `json:"expires_at"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
