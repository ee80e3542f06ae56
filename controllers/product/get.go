package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

// GetProductByID returns a single active product.
// URL param: /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND is_active = ?", id, true).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product.ToResponse()})
	}
}
