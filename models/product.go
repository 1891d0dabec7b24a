package models

import "time"

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Image         string   `json:"image"`
	Images        []string `gorm:"serializer:json" json:"images"`
	Sizes         []string `gorm:"serializer:json" json:"sizes"` // order matters for display
	InStock       bool     `gorm:"default:true" json:"in_stock"`
	StockCount    int      `json:"stock_count"`
	Featured      bool     `gorm:"default:false;index" json:"featured"`
	Badge         string   `json:"badge"`
	CategoryID    uint     `gorm:"not null;index" json:"category_id"`
	Category      Category `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
