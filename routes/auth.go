package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/config"
	authControllers "github.com/harshilv17/Zivara/controllers/auth"
	"github.com/harshilv17/Zivara/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(db, cfg))
		authGroup.POST("/login", authControllers.Login(db, cfg))
		authGroup.GET("/me", middleware.RequireAuth(cfg.JWTSecret), authControllers.Me(db))
		authGroup.PATCH("/profile", middleware.RequireAuth(cfg.JWTSecret), authControllers.UpdateProfile(db))
	}
}
