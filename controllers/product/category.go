package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

// GetAllCategories lists every category, ordered by name.
// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
