package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/phamnguyendevv/fashion-api/controllers/cart"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.POST("/add", cartControllers.AddCartHandler(db))
		cart.POST("/remove-item", cartControllers.RemoveCartHandler(db))
		cart.POST("/update", cartControllers.UpdateCartHandler(db))
		cart.GET("/:user_id", cartControllers.GetCartHandler(db))
	}
}
