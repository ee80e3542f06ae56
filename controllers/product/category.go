package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Where("is_active = ?", true).Order("id").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
	}
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Icon:        input.Icon,
			IsActive:    true,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
	}
}

type CategoryUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
}

// PUT /api/admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}

		var input CategoryUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.Icon != nil {
			category.Icon = *input.Icon
		}
		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category ID"})
			return
		}

		result := db.Delete(&models.Category{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
	}
}

func categoryExists(db *gorm.DB, id uint) (bool, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
