package reviewControllers

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

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// reviewerFields limits the preloaded reviewer to public fields.
func reviewerFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// GET /api/reviews/product/:productId
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var reviews []models.Review
		err = db.Preload("User", reviewerFields).
			Where("product_id = ?", productID).
			Order("created_at desc").
			Find(&reviews).Error
		if err != nil {
			log.Error().Err(err).Msg("reviews: list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
			return
		}

		avgRating := 0.0
		if len(reviews) > 0 {
			sum := 0
			for _, r := range reviews {
				sum += r.Rating
			}
			avgRating = float64(sum) / float64(len(reviews))
		}

		c.JSON(http.StatusOK, gin.H{
			"reviews":    reviews,
			"avg_rating": avgRating,
			"count":      len(reviews),
		})
	}
}

// POST /api/reviews/product/:productId — a second submission by the same
// user overwrites the existing row.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be 1-5"})
			return
		}
		userID := middleware.UserID(c)

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				log.Error().Err(err).Msg("reviews: product lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			}
			return
		}

		var existing models.Review
		err = db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
		if err == nil {
			existing.Rating = input.Rating
			existing.Comment = input.Comment
			if err := db.Save(&existing).Error; err != nil {
				log.Error().Err(err).Msg("reviews: update failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
				return
			}
			if err := db.Preload("User", reviewerFields).First(&existing, existing.ID).Error; err != nil {
				log.Error().Err(err).Msg("reviews: reload failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
				return
			}
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("reviews: lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: uint(productID),
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			log.Error().Err(err).Msg("reviews: create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		if err := db.Preload("User", reviewerFields).First(&review, review.ID).Error; err != nil {
			log.Error().Err(err).Msg("reviews: reload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// DELETE /api/reviews/:reviewId — only the author may delete.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.Atoi(c.Param("reviewId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		var review models.Review
		if err := db.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			} else {
				log.Error().Err(err).Msg("reviews: fetch failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			}
			return
		}
		if review.UserID != middleware.UserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			log.Error().Err(err).Msg("reviews: delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
