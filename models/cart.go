package models

import "time"

// CartItem holds one product in one user's cart. The unique index keeps
// a single row per (user, product); repeat adds bump the quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemResponse is a cart row plus its product, when the product
// still exists. Product is null for rows pointing at deleted products.
type CartItemResponse struct {
	ID        uint             `json:"id"`
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product"`
}
