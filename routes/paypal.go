package routes

import (
	"github.com/gin-gonic/gin"
	paypalControllers "github.com/phamnguyendevv/fashion-api/controllers/paypal"
)

func SetupPayPalRoutes(r *gin.Engine) {
	paypal := r.Group("/paypal")
	{
		paypal.POST("/create", paypalControllers.CreatePaymentHandler())
		paypal.POST("/capture/:paypal_order_id", paypalControllers.CapturePaymentHandler())
		paypal.GET("/:paypal_order_id", paypalControllers.GetPaymentHandler())
	}
}
