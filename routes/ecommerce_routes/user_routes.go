package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/cart_controller"
	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/user_controller/order_controller"
	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/user_controller/profile_controller"
	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/wishlist_controller"
	"github.com/pgera1/Khemixall-medical-products/middleware"
)

// SetupUserRoutes sets up all authenticated customer routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", profile_controller.GetMe)
		user.PATCH("/me", profile_controller.UpdateMe)

		// Cart
		user.GET("/cart", cart_controller.GetCart)
		user.POST("/cart/items", cart_controller.AddCartItem)
		user.PATCH("/cart/items/:id", cart_controller.UpdateCartQuantity)
		user.DELETE("/cart/items/:id", cart_controller.RemoveCartItem)

		// Wishlist
		user.GET("/wishlist", wishlist_controller.GetWishlist)
		user.POST("/wishlist/:id", wishlist_controller.ToggleWishlist)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/invoice", order_controller.DownloadInvoice)
	}
}
