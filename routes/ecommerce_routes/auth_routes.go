package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/auth_controller"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", auth_controller.SignUp)
		auth.POST("/signin", auth_controller.SignIn)
		auth.POST("/logout", auth_controller.Logout)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
	}
}
