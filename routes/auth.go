package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/auth"
	"github.com/Abumalik01/mauma-backend/config"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", auth.Login(db, cfg.JWTSecret))
		authGroup.POST("/guest", auth.CreateGuest(db, cfg.JWTSecret))
	}
}
