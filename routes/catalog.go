package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Gowty08/Animecosplay/controllers/product"
	reviewControllers "github.com/Gowty08/Animecosplay/controllers/review"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
		api.GET("/categories", productControllers.GetAllCategories(db))
	}
}
