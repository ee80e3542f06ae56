package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Abumalik01/mauma-backend/controllers/product"
	seedcontroller "github.com/Abumalik01/mauma-backend/controllers/seed"
)

// SetupPublicRoutes registers the unauthenticated catalog endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "MAUMA API is running"})
		})

		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))
		api.GET("/categories", productcontroller.GetCategories(db))

		api.POST("/seed-data", seedcontroller.SeedData(db))
	}
}
