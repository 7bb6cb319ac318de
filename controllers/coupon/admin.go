package couponControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/models"
)

type CouponInput struct {
	Code          string              `json:"code" binding:"required"`
	DiscountType  models.DiscountType `json:"discount_type" binding:"required"`
	DiscountValue float64             `json:"discount_value" binding:"required"`
	MinPurchase   float64             `json:"min_purchase"`
	MaxDiscount   float64             `json:"max_discount"`
	UsageLimit    int                 `json:"usage_limit"`
	ExpiresAt     *time.Time          `json:"expires_at"`
}

type CouponUpdateInput struct {
	DiscountType  *models.DiscountType `json:"discount_type"`
	DiscountValue *float64             `json:"discount_value"`
	MinPurchase   *float64             `json:"min_purchase"`
	MaxDiscount   *float64             `json:"max_discount"`
	UsageLimit    *int                 `json:"usage_limit"`
	ExpiresAt     *time.Time           `json:"expires_at"`
	IsActive      *bool                `json:"is_active"`
}

// GET /api/coupons (admin)
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at desc").Find(&coupons).Error; err != nil {
			log.Error().Err(err).Msg("coupons: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /api/coupons (admin)
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DiscountType != models.DiscountPercentage && input.DiscountType != models.DiscountFixed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount type"})
			return
		}

		code := normalizeCode(input.Code)
		var existing models.Coupon
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("coupons: lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}

		coupon := models.Coupon{
			Code:          code,
			DiscountType:  input.DiscountType,
			DiscountValue: input.DiscountValue,
			MinPurchase:   input.MinPurchase,
			MaxDiscount:   input.MaxDiscount,
			UsageLimit:    input.UsageLimit,
			ExpiresAt:     input.ExpiresAt,
			IsActive:      true,
		}
		if err := db.Create(&coupon).Error; err != nil {
			log.Error().Err(err).Msg("coupons: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /api/coupons/:id (admin)
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		var coupon models.Coupon
		if err := db.First(&coupon, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			} else {
				log.Error().Err(err).Msg("coupons: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			}
			return
		}

		var input CouponUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.DiscountType != nil {
			updates["discount_type"] = *input.DiscountType
		}
		if input.DiscountValue != nil {
			updates["discount_value"] = *input.DiscountValue
		}
		if input.MinPurchase != nil {
			updates["min_purchase"] = *input.MinPurchase
		}
		if input.MaxDiscount != nil {
			updates["max_discount"] = *input.MaxDiscount
		}
		if input.UsageLimit != nil {
			updates["usage_limit"] = *input.UsageLimit
		}
		if input.ExpiresAt != nil {
			updates["expires_at"] = *input.ExpiresAt
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if len(updates) > 0 {
			if err := db.Model(&coupon).Updates(updates).Error; err != nil {
				log.Error().Err(err).Msg("coupons: update failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
				return
			}
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /api/coupons/:id (admin)
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		result := db.Delete(&models.Coupon{}, id)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("coupons: delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
