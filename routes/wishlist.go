package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	wishlistControllers "github.com/harshilv17/Zivara/controllers/wishlist"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupWishlistRoutes registers all "/api/wishlist/*" endpoints.
func SetupWishlistRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	wishlist := r.Group("/api/wishlist")
	wishlist.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlist(db))
		wishlist.GET("/check/:productId", wishlistControllers.CheckWishlist(db))
	}
}
