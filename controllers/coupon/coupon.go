package couponControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/models"
)

type ValidateInput struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cart_total"`
}

type ApplyInput struct {
	Code string `json:"code" binding:"required"`
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ComputeDiscount applies the coupon's discount rule to a cart total.
// PERCENTAGE is capped at MaxDiscount when one is set; FIXED is returned as is.
func ComputeDiscount(coupon models.Coupon, cartTotal float64) float64 {
	if coupon.DiscountType == models.DiscountPercentage {
		discount := cartTotal * coupon.DiscountValue / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
		return discount
	}
	return coupon.DiscountValue
}

// POST /api/coupons/validate
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code is required"})
			return
		}

		var coupon models.Coupon
		err := db.Where("code = ?", normalizeCode(input.Code)).First(&coupon).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invalid coupon code"})
			} else {
				log.Error().Err(err).Msg("coupons: lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
			}
			return
		}

		// Rejection checks in fixed order.
		if !coupon.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon is no longer active"})
			return
		}
		if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon has expired"})
			return
		}
		if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon usage limit reached"})
			return
		}
		if coupon.MinPurchase > 0 && input.CartTotal < coupon.MinPurchase {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Minimum purchase of ₹%.0f required", coupon.MinPurchase),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":          true,
			"discount":       ComputeDiscount(coupon, input.CartTotal),
			"discount_type":  coupon.DiscountType,
			"discount_value": coupon.DiscountValue,
			"code":           coupon.Code,
		})
	}
}

// POST /api/coupons/apply increments the usage counter. The increment is a
// single conditional UPDATE so concurrent applies cannot push UsedCount past
// the limit.
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ApplyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code is required"})
			return
		}
		code := normalizeCode(input.Code)

		result := db.Model(&models.Coupon{}).
			Where("code = ?", code).
			Where("usage_limit = 0 OR used_count < usage_limit").
			Update("used_count", gorm.Expr("used_count + 1"))
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("coupons: apply failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply coupon"})
			return
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := db.Model(&models.Coupon{}).Where("code = ?", code).Count(&count).Error; err != nil {
				log.Error().Err(err).Msg("coupons: apply lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply coupon"})
				return
			}
			if count == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invalid coupon code"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon usage limit reached"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
