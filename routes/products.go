package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	productcontroller "github.com/harshilv17/Zivara/controllers/product"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupProductRoutes registers all "/api/products/*" endpoints. Reads are
// public; writes are admin-only.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/categories", productcontroller.GetCategories(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		admin := products.Group("")
		admin.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin)
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.POST("/seed", productcontroller.SeedProducts(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
