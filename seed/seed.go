// Package seed imports a catalog from the legacy JSON data file, a tree of
// categories each embedding its products. Loading is idempotent on category
// and product names so it can run at every startup.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type catalogFile struct {
	Categories []categoryEntry `json:"categories"`
}

type categoryEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Products    []productEntry `json:"products"`
}

type productEntry struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Image         string   `json:"imageUrl"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	InStock       bool     `json:"inStock"`
	StockCount    int      `json:"stockCount"`
	Featured      bool     `json:"featured"`
	Badge         string   `json:"badge"`
}

// Load reads the catalog file at path and upserts its categories and products.
func Load(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, ce := range file.Categories {
			category := models.Category{
				Name:        ce.Name,
				Description: ce.Description,
				Image:       ce.Image,
			}
			if err := tx.Where(models.Category{Name: ce.Name}).
				Attrs(models.Category{Description: ce.Description, Image: ce.Image}).
				FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("upsert category %q: %w", ce.Name, err)
			}

			for _, pe := range ce.Products {
				product := models.Product{
					Name:       pe.Name,
					CategoryID: category.ID,
				}
				attrs := models.Product{
					Description:   pe.Description,
					Price:         pe.Price,
					OriginalPrice: pe.OriginalPrice,
					Rating:        pe.Rating,
					ReviewCount:   pe.ReviewCount,
					Image:         pe.Image,
					Images:        pe.Images,
					Sizes:         pe.Sizes,
					InStock:       pe.InStock,
					StockCount:    pe.StockCount,
					Featured:      pe.Featured,
					Badge:         pe.Badge,
				}
				if err := tx.Where(models.Product{Name: pe.Name, CategoryID: category.ID}).
					Attrs(attrs).
					FirstOrCreate(&product).Error; err != nil {
					return fmt.Errorf("upsert product %q: %w", pe.Name, err)
				}
			}
		}
		return nil
	})
}
