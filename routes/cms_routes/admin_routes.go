package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/controllers/cms/admin_controller"
	"github.com/pgera1/Khemixall-medical-products/middleware"
)

// SetupAdminRoutes sets up the admin auth and dashboard routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// Public
	admin.POST("/login", admin_controller.AdminLogin)

	// Protected
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_controller.AdminLogout)
		protected.GET("/me", admin_controller.GetAdminMe)
		protected.GET("/stats", admin_controller.GetStoreStats)
	}
}
