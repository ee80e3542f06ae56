package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

// ExportProductsToExcel streams the full catalog (active and inactive)
// as an Excel sheet. Admin-only.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Description", "Price", "OriginalPrice",
			"CategoryID", "Brand", "ImageURL", "Stock", "Rating",
			"ReviewCount", "Featured", "Active", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			if p.OriginalPrice != nil {
				row.AddCell().SetValue(*p.OriginalPrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(int(p.CategoryID))
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ReviewCount)
			row.AddCell().SetValue(p.IsFeatured)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file"})
			return
		}
	}
}
