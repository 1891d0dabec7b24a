package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type AddWishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.WishlistItem
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"wishlist_items": items})
	}
}

// POST /api/wishlist
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate product"})
			return
		}

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Product already in wishlist"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check wishlist"})
			return
		}

		item := models.WishlistItem{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to wishlist"})
			return
		}

		item.Product = product
		c.JSON(http.StatusCreated, gin.H{"wishlist_item": item})
	}
}

// DELETE /api/wishlist/:product_id
func DeleteWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}
