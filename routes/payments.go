package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	paymentControllers "github.com/harshilv17/Zivara/controllers/payment"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupPaymentRoutes registers all "/api/payments/*" endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, gateway *paymentControllers.GatewayClient) {
	payments := r.Group("/api/payments")
	payments.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		payments.POST("/create-order", paymentControllers.CreatePaymentOrder(db, cfg, gateway))
		payments.POST("/verify", paymentControllers.VerifyPayment(db, cfg))
	}
}
