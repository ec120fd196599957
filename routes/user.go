package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/phamnguyendevv/fashion-api/controllers/user"
	"gorm.io/gorm"
)

// SetupUserRoutes registers profile and address-book endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	{
		userGroup.GET("/:user_id", userControllers.GetUser(db))
		userGroup.PUT("/:user_id", userControllers.UpdateUser(db))

		addresses := userGroup.Group("/:user_id/addresses")
		{
			addresses.GET("", userControllers.GetAddresses(db))
			addresses.POST("", userControllers.AddAddress(db))
			addresses.PUT("/:id", userControllers.UpdateAddress(db))
			addresses.DELETE("/:id", userControllers.DeleteAddress(db))
		}
	}
}
