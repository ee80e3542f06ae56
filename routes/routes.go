package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/config"
)

// SetupRoutes wires up the public, auth, cart and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupPublicRoutes(r, db)
	SetupAuthRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
