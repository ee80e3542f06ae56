package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/config"
	cartcontroller "github.com/Abumalik01/mauma-backend/controllers/cart"
	"github.com/Abumalik01/mauma-backend/middleware"
)

// SetupCartRoutes registers the cart endpoints. All of them require a
// valid bearer token; the middleware resolves the caller's identity.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cartGroup.GET("", cartcontroller.GetCart(db))
		cartGroup.POST("", cartcontroller.AddToCart(db))
		cartGroup.PUT("/:id", cartcontroller.UpdateCartItem(db))
		cartGroup.DELETE("/:id", cartcontroller.RemoveFromCart(db))
	}
}
