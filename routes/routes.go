package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	paymentControllers "github.com/harshilv17/Zivara/controllers/payment"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Zivara Backend is Running!")
	})

	gateway := paymentControllers.NewGatewayClient(cfg)

	SetupAuthRoutes(r, db, cfg)
	SetupProductRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
	SetupPaymentRoutes(r, db, cfg, gateway)
	SetupWishlistRoutes(r, db, cfg)
	SetupReviewRoutes(r, db, cfg)
	SetupCouponRoutes(r, db, cfg)
	SetupAddressRoutes(r, db, cfg)
}
