package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	orderControllers "github.com/harshilv17/Zivara/controllers/order"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		orders.POST("", orderControllers.CreateOrder(db))
		orders.GET("", orderControllers.GetOrders(db))

		admin := orders.Group("/admin")
		admin.Use(middleware.RequireAdmin)
		{
			admin.GET("/all", orderControllers.GetAllOrders(db))
			admin.PATCH("/:id/status", orderControllers.UpdateOrderStatus(db))
		}

		orders.GET("/:id", orderControllers.GetOrder(db))
		orders.PATCH("/:id/payment", orderControllers.UpdatePaymentStatus(db))
	}
}
