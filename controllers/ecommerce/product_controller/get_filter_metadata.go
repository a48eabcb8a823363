package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	filter_cache "github.com/pgera1/Khemixall-medical-products/cache"
	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

// GetFilterMetadata godoc
// @Summary Get storefront filter metadata
// @Description Brands, category list, availability counts and price range for the filter sidebar. Cached in-process; invalidated on admin product mutations.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if meta, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
		return
	}

	meta, err := computeFilterMetadata(c)
	if err != nil {
		log.Printf("[store.filters] failed to compute metadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filter_cache.SetMetadata(meta)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}

func computeFilterMetadata(c *gin.Context) (models.FilterMetadata, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Aggregates straight over pgx; the brand set goes through the engine
	// helper so storefront and sidebar agree on ordering.
	var inStock, outOfStock int
	var minPrice, maxPrice float64
	row := config.StorePool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE in_stock),
			COUNT(*) FILTER (WHERE NOT in_stock),
			COALESCE(MIN(price), 0),
			COALESCE(MAX(price), 0)
		FROM products
	`)
	if err := row.Scan(&inStock, &outOfStock, &minPrice, &maxPrice); err != nil {
		return models.FilterMetadata{}, err
	}

	catalog, err := loadCatalog(c)
	if err != nil {
		return models.FilterMetadata{}, err
	}

	return models.FilterMetadata{
		Brands:     services.UniqueBrands(catalog),
		Categories: models.StorableCategories,
		Availability: &models.AvailabilityData{
			InStock:    inStock,
			OutOfStock: outOfStock,
		},
		PriceRange: &models.PriceRangeData{Min: minPrice, Max: maxPrice},
	}, nil
}
