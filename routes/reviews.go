package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	reviewControllers "github.com/harshilv17/Zivara/controllers/review"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupReviewRoutes registers all "/api/reviews/*" endpoints. Reading a
// product's reviews is public.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	reviews := r.Group("/api/reviews")
	{
		reviews.GET("/product/:productId", reviewControllers.GetProductReviews(db))
		reviews.POST("/product/:productId", middleware.RequireAuth(cfg.JWTSecret), reviewControllers.CreateReview(db))
		reviews.DELETE("/:reviewId", middleware.RequireAuth(cfg.JWTSecret), reviewControllers.DeleteReview(db))
	}
}
