package seedcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

type seedProduct struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64 // 0 means none
	Category      string
	Brand         string
	ImageURL      string
	StockQuantity int
	Rating        float64
	ReviewCount   int
	IsFeatured    bool
}

var seedCategories = []models.Category{
	{Name: "Electronics", Description: "Smartphones, tablets, and gadgets", Icon: "smartphone", IsActive: true},
	{Name: "Fashion", Description: "Clothing, shoes, and accessories", Icon: "shirt", IsActive: true},
	{Name: "Home Appliances", Description: "Kitchen and household items", Icon: "home", IsActive: true},
	{Name: "Building Materials", Description: "Construction and tools", Icon: "wrench", IsActive: true},
	{Name: "Automotive", Description: "Vehicles and automotive parts", Icon: "car", IsActive: true},
}

var seedProducts = []seedProduct{
	{
		Name:          "Xiaomi Redmi Note 12 Pro 5G Smartphone",
		Description:   "Latest 5G smartphone with advanced camera system and long-lasting battery",
		Price:         120000,
		OriginalPrice: 150000,
		Category:      "Electronics",
		Brand:         "Xiaomi",
		ImageURL:      "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
		StockQuantity: 50,
		Rating:        4.2,
		ReviewCount:   156,
		IsFeatured:    true,
	},
	{
		Name:          "Apple Watch Series 8 Smart Watch",
		Description:   "Advanced health monitoring and fitness tracking smartwatch",
		Price:         85000,
		Category:      "Electronics",
		Brand:         "Apple",
		ImageURL:      "https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=400&h=400&fit=crop",
		StockQuantity: 30,
		Rating:        4.8,
		ReviewCount:   89,
		IsFeatured:    true,
	},
	{
		Name:          "Sony WH-1000XM4 Wireless Headphones",
		Description:   "Industry-leading noise canceling wireless headphones",
		Price:         45000,
		OriginalPrice: 55000,
		Category:      "Electronics",
		Brand:         "Sony",
		ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
		StockQuantity: 75,
		Rating:        4.6,
		ReviewCount:   234,
		IsFeatured:    true,
	},
	{
		Name:          "Samsung 55\" 4K Smart TV",
		Description:   "Ultra HD 4K Smart TV with HDR and built-in streaming apps",
		Price:         280000,
		Category:      "Electronics",
		Brand:         "Samsung",
		ImageURL:      "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
		StockQuantity: 20,
		Rating:        4.4,
		ReviewCount:   67,
		IsFeatured:    true,
	},
	{
		Name:          "Nike Air Max 270 Running Shoes",
		Description:   "Comfortable running shoes with Air Max cushioning technology",
		Price:         25000,
		OriginalPrice: 32000,
		Category:      "Fashion",
		Brand:         "Nike",
		ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
		StockQuantity: 100,
		Rating:        4.3,
		ReviewCount:   145,
		IsFeatured:    true,
	},
	{
		Name:          "Instant Pot Duo 7-in-1 Electric Pressure Cooker",
		Description:   "Multi-functional electric pressure cooker for quick and easy cooking",
		Price:         35000,
		Category:      "Home Appliances",
		Brand:         "Instant Pot",
		ImageURL:      "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
		StockQuantity: 40,
		Rating:        4.7,
		ReviewCount:   98,
		IsFeatured:    true,
	},
	{
		Name:          "Adidas Ultraboost 22 Running Shoes",
		Description:   "Premium running shoes with responsive Boost midsole",
		Price:         28000,
		OriginalPrice: 35000,
		Category:      "Fashion",
		Brand:         "Adidas",
		ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
		StockQuantity: 80,
		Rating:        4.5,
		ReviewCount:   112,
		IsFeatured:    true,
	},
	{
		Name:          "Dyson V15 Detect Cordless Vacuum",
		Description:   "Powerful cordless vacuum with laser dust detection",
		Price:         95000,
		Category:      "Home Appliances",
		Brand:         "Dyson",
		ImageURL:      "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
		StockQuantity: 25,
		Rating:        4.9,
		ReviewCount:   76,
		IsFeatured:    true,
	},
}

const (
	seedAdminEmail    = "admin@mauma.com"
	seedAdminPassword = "admin123"
)

// POST /api/seed-data
// Insert-if-absent on natural keys (category name, product name, admin
// email), so running it any number of times leaves the same rows.
func SeedData(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			categoryIDs := make(map[string]uint, len(seedCategories))
			for _, cat := range seedCategories {
				var existing models.Category
				err := tx.Where("name = ?", cat.Name).First(&existing).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if err := tx.Create(&cat).Error; err != nil {
						return err
					}
					categoryIDs[cat.Name] = cat.ID
					continue
				}
				if err != nil {
					return err
				}
				categoryIDs[existing.Name] = existing.ID
			}

			for _, sp := range seedProducts {
				var existing models.Product
				err := tx.Where("name = ?", sp.Name).First(&existing).Error
				if err == nil {
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}

				product := models.Product{
					Name:          sp.Name,
					Description:   sp.Description,
					Price:         sp.Price,
					CategoryID:    categoryIDs[sp.Category],
					Brand:         sp.Brand,
					ImageURL:      sp.ImageURL,
					StockQuantity: sp.StockQuantity,
					Rating:        sp.Rating,
					ReviewCount:   sp.ReviewCount,
					IsFeatured:    sp.IsFeatured,
					IsActive:      true,
				}
				if sp.OriginalPrice > 0 {
					op := sp.OriginalPrice
					product.OriginalPrice = &op
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
			}

			var admin models.User
			err := tx.Where("email = ?", seedAdminEmail).First(&admin).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				hashed, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				admin = models.User{
					Username:     "admin",
					Email:        seedAdminEmail,
					PasswordHash: string(hashed),
					IsAdmin:      true,
				}
				return tx.Create(&admin).Error
			}
			return err
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to seed database: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database seeded successfully with sample data"})
	}
}
