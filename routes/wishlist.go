package routes

import (
	"github.com/gin-gonic/gin"
	wishlistControllers "github.com/phamnguyendevv/fashion-api/controllers/wishlist"
	"gorm.io/gorm"
)

func SetupWishlistRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/product/wishlist", wishlistControllers.AddWishlistHandler(db))
	r.POST("/product/remove-wishlist", wishlistControllers.RemoveWishlistHandler(db))
	r.GET("/product/wishlist/:user_id", wishlistControllers.GetWishlistHandler(db))
}
