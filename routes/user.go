package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Gowty08/Animecosplay/controllers/cart"
	orderControllers "github.com/Gowty08/Animecosplay/controllers/order"
	reviewControllers "github.com/Gowty08/Animecosplay/controllers/review"
	userControllers "github.com/Gowty08/Animecosplay/controllers/user"
	wishlistControllers "github.com/Gowty08/Animecosplay/controllers/wishlist"
	"github.com/Gowty08/Animecosplay/middleware"
)

// SetupUserRoutes registers the bearer-token-protected endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		api.GET("/profile", userControllers.GetUser(db))
		api.PUT("/profile", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		api.GET("/cart", cartControllers.GetUserCart(db))
		api.POST("/cart", cartControllers.AddCartItem(db))
		api.DELETE("/cart/:id", cartControllers.DeleteCartItem(db))
		api.DELETE("/cart", cartControllers.ClearUserCart(db))

		// ──────────────── Wishlist ────────────────
		api.GET("/wishlist", wishlistControllers.GetWishlist(db))
		api.POST("/wishlist", wishlistControllers.AddWishlistItem(db))
		api.DELETE("/wishlist/:product_id", wishlistControllers.DeleteWishlistItem(db))

		// ──────────────── Orders ────────────────
		api.POST("/orders", orderControllers.PlaceOrderHandler(db))
		api.GET("/orders", orderControllers.GetUserOrders(db))

		// ──────────────── Reviews ────────────────
		api.POST("/products/:id/reviews", reviewControllers.CreateReview(db))
	}
}
