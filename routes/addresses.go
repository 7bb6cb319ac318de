package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	addressControllers "github.com/harshilv17/Zivara/controllers/address"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupAddressRoutes registers all "/api/addresses/*" endpoints.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	addresses := r.Group("/api/addresses")
	addresses.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		addresses.GET("", addressControllers.GetAddresses(db))
		addresses.POST("", addressControllers.CreateAddress(db))
		addresses.PUT("/:id", addressControllers.UpdateAddress(db))
		addresses.DELETE("/:id", addressControllers.DeleteAddress(db))
		addresses.PATCH("/:id/default", addressControllers.SetDefaultAddress(db))
	}
}
