package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/controllers/cms/product_controller"
	"github.com/pgera1/Khemixall-medical-products/middleware"
)

// SetupProductRoutes sets up the admin catalog routes
func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	{
		product.GET("", product_controller.GetProducts)
		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)
		product.POST("/upload-image", product_controller.UploadProductImage)
	}
}
