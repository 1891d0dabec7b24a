package orderControllers

import (
	"crypto/rand"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type PlaceOrderInput struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address"`
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateOrderNumber returns a random reference like "ORD-7KQ2M9XA41BC".
func generateOrderNumber() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "ORD-FALLBACK"
	}
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return "ORD-" + string(buf)
}

var errEmptyCart = errors.New("cart is empty")

// PlaceOrder converts the user's cart into an order. The order row, its items
// and the cart-line deletions happen in one transaction; per-item prices are
// frozen at the current product price. A duplicate order number is retried
// with a fresh one, the unique index being the final arbiter.
func PlaceOrder(db *gorm.DB, userID string, input PlaceOrderInput) (*models.Order, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errEmptyCart
	}

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.Price
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	// Each attempt is a full transaction: a duplicate order number aborts it,
	// so the retry rebuilds the order from scratch with a fresh number.
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
				Size:      item.Size,
			})
		}

		order := &models.Order{
			OrderNumber:     generateOrderNumber(),
			UserID:          userID,
			Items:           orderItems,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			PaymentMethod:   paymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			ShippingAddress: input.ShippingAddress,
		}

		lastErr = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(order).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
		})
		if lastErr == nil {
			return order, nil
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		// Both fields are optional; an empty body is a valid request.
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, input)
		if err != nil {
			if errors.Is(err, errEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// GET /api/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
