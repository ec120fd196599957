package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog browsing
	SetupCatalogRoutes(r, db)

	// Cart, wishlist and orders
	SetupCartRoutes(r, db)
	SetupWishlistRoutes(r, db)
	SetupOrderRoutes(r, db)

	// User profile and address book
	SetupUserRoutes(r, db)

	// PayPal payment routes
	SetupPayPalRoutes(r)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db)
}
