package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/config"
	admincontroller "github.com/Abumalik01/mauma-backend/controllers/admin"
	productcontroller "github.com/Abumalik01/mauma-backend/controllers/product"
	"github.com/Abumalik01/mauma-backend/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Login is the
// only open one; everything else sits behind the admin token gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.POST("/api/admin/login", admincontroller.Login(db, cfg.JWTSecret))

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		adminGroup.GET("/users", admincontroller.GetAllUsers(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
	}
}
