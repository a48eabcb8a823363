package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_product "github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/product_controller"
	store_review "github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/review_controller"
)

// SetupStorefrontRoutes registers the public catalog surface. No auth.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID)

		products.GET("/:id/reviews", store_review.GetReviews)
		products.POST("/:id/reviews", store_review.AddReview)
	}

	store.GET("/filters/metadata", store_product.GetFilterMetadata)
}
