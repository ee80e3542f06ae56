package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required"`
	OriginalPrice *float64 `json:"original_price"`
	CategoryID    uint     `json:"category_id"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"image_url"`
	StockQuantity int      `json:"stock_quantity"`
	IsFeatured    bool     `json:"is_featured"`
}

// CreateProduct creates a product from a JSON body. A category reference,
// when present, must point at an existing category.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must not be negative"})
			return
		}

		if input.CategoryID != 0 {
			ok, err := categoryExists(db, input.CategoryID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to validate category"})
				return
			}
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category does not exist"})
				return
			}
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         *input.Price,
			OriginalPrice: input.OriginalPrice,
			CategoryID:    input.CategoryID,
			Brand:         input.Brand,
			ImageURL:      input.ImageURL,
			StockQuantity: input.StockQuantity,
			IsFeatured:    input.IsFeatured,
			IsActive:      true,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product.ToResponse()})
	}
}

type ProductUpdateInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	CategoryID    *uint    `json:"category_id"`
	Brand         *string  `json:"brand"`
	ImageURL      *string  `json:"image_url"`
	StockQuantity *int     `json:"stock_quantity"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"review_count"`
	IsFeatured    *bool    `json:"is_featured"`
	IsActive      *bool    `json:"is_active"`
}

// UpdateProduct applies a partial update to an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil && *input.CategoryID != 0 {
			ok, err := categoryExists(db, *input.CategoryID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to validate category"})
				return
			}
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category does not exist"})
				return
			}
			product.CategoryID = *input.CategoryID
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must not be negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.StockQuantity != nil {
			product.StockQuantity = *input.StockQuantity
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.ReviewCount != nil {
			product.ReviewCount = *input.ReviewCount
		}
		if input.IsFeatured != nil {
			product.IsFeatured = *input.IsFeatured
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product.ToResponse()})
	}
}

// DeleteProduct hard-deletes a product. Cart rows that reference it are
// left in place; cart reads list them without a product and skip them
// when totalling.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}
