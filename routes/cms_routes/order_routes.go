package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/controllers/cms/order_controller"
	"github.com/pgera1/Khemixall-medical-products/middleware"
)

// SetupOrderRoutes sets up the admin order routes
func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AdminAuthMiddleware())
	{
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:id", order_controller.GetOrderDetails)
		orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	}
}
