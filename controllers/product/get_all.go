package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

const (
	defaultPerPage = 12
	maxPerPage     = 100
)

// GetProducts lists the catalog with optional conjunctive filters.
// GET /api/products?category_id=&featured=&search=&page=&per_page=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		if featured := c.Query("featured"); featured != "" {
			want, err := strconv.ParseBool(featured)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid featured flag"})
				return
			}
			query = query.Where("featured = ?", want)
		}

		if search := c.Query("search"); search != "" {
			// Case-insensitive substring match on the product name.
			pattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ?", pattern)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count products"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
		if perPage < 1 {
			perPage = defaultPerPage
		}
		if perPage > maxPerPage {
			perPage = maxPerPage
		}

		var products []models.Product
		if err := query.
			Order("created_at DESC, id DESC").
			Limit(perPage).
			Offset((page - 1) * perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
	}
}
