package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/middleware"
	"github.com/Abumalik01/mauma-backend/models"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart
// Rows whose product has been deleted are still listed, with a null
// product, and do not contribute to the total.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch cart"})
			return
		}

		total := 0.0
		responses := make([]models.CartItemResponse, 0, len(items))
		for _, item := range items {
			resp := models.CartItemResponse{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err == nil {
				pr := product.ToResponse()
				resp.Product = &pr
				total += product.Price * float64(item.Quantity)
			}
			responses = append(responses, resp)
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"cart_items": responses,
			"total":      total,
			"count":      len(responses),
		})
	}
}

// POST /api/cart
// Adding a product already in the cart increments its quantity.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product ID is required"})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Quantity must be positive"})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND is_active = ?", input.ProductID, true).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to validate product"})
			}
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to start transaction"})
			return
		}

		var item models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += input.Quantity
			if err := tx.Save(&item).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:    userID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add item to cart"})
				return
			}
		default:
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch cart item"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to commit cart change"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
	}
}

// PUT /api/cart/:id
// Quantity 0 removes the row; negative quantities are rejected.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item ID"})
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil || *input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid quantity is required"})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to start transaction"})
			return
		}

		if *input.Quantity == 0 {
			if err := tx.Delete(&item).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove cart item"})
				return
			}
		} else {
			item.Quantity = *input.Quantity
			if err := tx.Save(&item).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item"})
				return
			}
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to commit cart change"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
	}
}

// DELETE /api/cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
	}
}
