package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

// GetProducts filters, sorts and paginates the active catalog.
// Query params: page, per_page, category_id, search, featured,
// min_price, max_price, sort_by, sort_order.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		if err != nil || perPage < 1 {
			perPage = 20
		}

		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
			cid, err := strconv.ParseUint(categoryIDStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		if search := c.Query("search"); search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		if featuredStr := c.Query("featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid featured flag"})
				return
			}
			query = query.Where("is_featured = ?", featured)
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		// Whitelisted sort fields; anything else falls back to created_at desc
		sortBy := c.DefaultQuery("sort_by", "created_at")
		switch sortBy {
		case "name", "price", "rating", "created_at":
		default:
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("sort_order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(sortBy + " " + sortOrder).
			Offset((page - 1) * perPage).
			Limit(perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		pages := int((total + int64(perPage) - 1) / int64(perPage))

		responses := make([]models.ProductResponse, 0, len(products))
		for _, p := range products {
			responses = append(responses, p.ToResponse())
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": responses,
			"pagination": gin.H{
				"page":     page,
				"per_page": perPage,
				"total":    total,
				"pages":    pages,
				"has_next": page < pages,
				"has_prev": page > 1,
			},
		})
	}
}
