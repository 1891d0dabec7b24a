package models

import "time"

// CartItem is one (product, size) line in a user's cart. Adding the same
// product+size again increments Quantity instead of creating a second row;
// the composite unique index backs that up at the storage level.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_product_size" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product_size" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Size      string    `gorm:"uniqueIndex:idx_cart_user_product_size" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
