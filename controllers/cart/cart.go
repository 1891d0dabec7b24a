package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type AddCartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Size      string `json:"size"`
}

// POST /api/cart
// Adding an existing (product, size) pair increments the line's quantity.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Size == "" {
			input.Size = "M"
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

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ? AND size = ?",
			userID, input.ProductID, input.Size).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserID:    userID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				Size:      input.Size,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item to cart"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart item"})
			return
		} else {
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart item"})
				return
			}
		}

		item.Product = product
		c.JSON(http.StatusCreated, gin.H{"cart_item": item})
	}
}

// GET /api/cart
// The total is computed live from current product prices, not frozen.
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		var total float64
		for _, item := range items {
			total += float64(item.Quantity) * item.Product.Price
		}

		c.JSON(http.StatusOK, gin.H{"cart_items": items, "total": total})
	}
}

// DELETE /api/cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
