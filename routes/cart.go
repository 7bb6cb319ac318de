package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	cartControllers "github.com/harshilv17/Zivara/controllers/cart"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. All require auth.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/add", cartControllers.AddToCart(db))
		cart.PATCH("/item/:itemId", cartControllers.UpdateCartItem(db))
		cart.DELETE("/item/:itemId", cartControllers.RemoveFromCart(db))
		cart.DELETE("/clear", cartControllers.ClearCart(db))
	}
}
