package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	filter_cache "github.com/pgera1/Khemixall-medical-products/cache"
	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes a product and its reviews from the catalog. Order snapshots are unaffected.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		log.Printf("[admin.products] delete failed: %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Reviews reference products by id; sweep them with the product.
	if err := config.StoreGorm.WithContext(ctx).
		Delete(&models.Review{}, "product_id = ?", productID).Error; err != nil {
		log.Printf("⚠️ [admin.products] review sweep failed for %s: %v", productID, err)
	}

	filter_cache.Invalidate()

	log.Printf("✅ Product deleted: %s", productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
