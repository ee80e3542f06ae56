package models

import (
	"math"
	"time"
)

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	CategoryID    uint     `gorm:"index" json:"category_id"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"image_url"`
	StockQuantity int      `gorm:"default:0" json:"stock_quantity"`
	Rating        float64  `gorm:"default:0" json:"rating"`
	ReviewCount   int      `gorm:"default:0" json:"review_count"`
	IsFeatured    bool     `json:"is_featured"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductResponse is the serialized form of a product. It carries the
// derived discount_percentage, which is never stored.
type ProductResponse struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	OriginalPrice      *float64 `json:"original_price"`
	CategoryID         uint     `json:"category_id"`
	Brand              string   `json:"brand"`
	ImageURL           string   `json:"image_url"`
	StockQuantity      int      `json:"stock_quantity"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	IsFeatured         bool     `json:"is_featured"`
	DiscountPercentage *int     `json:"discount_percentage"`
}

func (p Product) ToResponse() ProductResponse {
	var discount *int
	if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
		d := int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
		discount = &d
	}
	return ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		CategoryID:         p.CategoryID,
		Brand:              p.Brand,
		ImageURL:           p.ImageURL,
		StockQuantity:      p.StockQuantity,
		Rating:             p.Rating,
		ReviewCount:        p.ReviewCount,
		IsFeatured:         p.IsFeatured,
		DiscountPercentage: discount,
	}
}
