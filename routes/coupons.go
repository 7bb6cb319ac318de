package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	couponControllers "github.com/harshilv17/Zivara/controllers/coupon"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupCouponRoutes registers all "/api/coupons/*" endpoints. Validate and
// apply need a logged-in user; management is admin-only.
func SetupCouponRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	coupons := r.Group("/api/coupons")
	coupons.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		coupons.POST("/validate", couponControllers.ValidateCoupon(db))
		coupons.POST("/apply", couponControllers.ApplyCoupon(db))

		admin := coupons.Group("")
		admin.Use(middleware.RequireAdmin)
		{
			admin.GET("", couponControllers.GetAllCoupons(db))
			admin.POST("", couponControllers.CreateCoupon(db))
			admin.PUT("/:id", couponControllers.UpdateCoupon(db))
			admin.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}
	}
}
