package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GET /api/products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// POST /api/products/:id/reviews
// The product's rating and review count are recomputed in the same transaction.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve product"})
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: product.ID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			var stats struct {
				Avg   float64
				Count int
			}
			if err := tx.Model(&models.Review{}).
				Select("AVG(rating) AS avg, COUNT(*) AS count").
				Where("product_id = ?", product.ID).
				Scan(&stats).Error; err != nil {
				return err
			}

			return tx.Model(&product).
				Updates(map[string]interface{}{
					"rating":       stats.Avg,
					"review_count": stats.Count,
				}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"review": review})
	}
}
