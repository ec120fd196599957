package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/phamnguyendevv/fashion-api/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/order")
	{
		// Create a new order from cart items
		orders.POST("/add", orderControllers.AddOrderHandler(db))

		// Update order status (e.g. Shipped, Cancelled)
		orders.POST("/update", orderControllers.UpdateOrderHandler(db))

		// Fetch orders for a specific user
		orders.GET("/:user_id", orderControllers.GetOrdersHandler(db))
	}

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)
}
