package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	filter_cache "github.com/pgera1/Khemixall-medical-products/cache"
	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Adds a product to the catalog. Rating and review count start at zero regardless of the payload.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !req.Category.IsStorable() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category"))
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		Rating:      0,
		Reviews:     0,
		InStock:     inStock,
		Features:    models.FeatureList(req.Features),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.products] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	filter_cache.Invalidate()

	log.Printf("✅ Product created: %s (%s)", product.Name, product.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
