package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Retrieve the catalog filtered by search term, category, availability and brands, sorted by the requested key. All predicates are combined with AND; the result is the full filtered sequence in a stable order.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search term (matches name, description, brand, features)"
// @Param category query string false "Category name or All"
// @Param availability query string false "all | in-stock | out-of-stock" default(all)
// @Param brand query []string false "Brand names (repeatable)"
// @Param sortBy query string false "featured | price-asc | price-desc | rating" default(featured)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	filter := models.FilterStateFromQuery(c.Request.URL.Query())

	catalog, err := loadCatalog(c)
	if err != nil {
		log.Printf("[store.products] failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products := services.FilterProducts(catalog, filter)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		products,
		&models.Pagination{
			Page:       1,
			Limit:      len(products),
			Total:      len(products),
			TotalPages: 1,
		},
	))
}

// loadCatalog fetches the full catalog in source order (oldest first), which
// is what the featured sort preserves.
func loadCatalog(c *gin.Context) ([]models.Product, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
