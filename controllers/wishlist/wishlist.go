package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/middleware"
	"github.com/harshilv17/Zivara/models"
)

type AddInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.WishlistItem
		err := db.Preload("Product").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at desc").
			Find(&items).Error
		if err != nil {
			log.Error().Err(err).Msg("wishlist: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		userID := middleware.UserID(c)

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				log.Error().Err(err).Msg("wishlist: product lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			}
			return
		}

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already in wishlist"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("wishlist: lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		item := models.WishlistItem{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil {
			log.Error().Err(err).Msg("wishlist: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		item.Product = product

		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /api/wishlist/:productId
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", middleware.UserID(c), productID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("wishlist: remove failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// GET /api/wishlist/check/:productId
func CheckWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var count int64
		err = db.Model(&models.WishlistItem{}).
			Where("user_id = ? AND product_id = ?", middleware.UserID(c), productID).
			Count(&count).Error
		if err != nil {
			log.Error().Err(err).Msg("wishlist: check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": count > 0})
	}
}
