package review_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetReviews godoc
// @Summary List reviews for a product
// @Description Returns the product's reviews, newest first.
// @Tags Storefront - Reviews
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=[]models.Review}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews := make([]models.Review, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("[store.reviews] failed to fetch reviews: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews fetched successfully", reviews))
}
