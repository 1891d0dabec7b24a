package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// auth, and token-protected route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog + auth (no middleware)
	SetupCatalogRoutes(r, db)
	SetupAuthRoutes(r, db)

	// Cart, wishlist, orders, profile (JWT-protected)
	SetupUserRoutes(r, db)
}
