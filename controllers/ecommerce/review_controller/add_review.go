package review_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// AddReview godoc
// @Summary Submit a product review
// @Description Append a review to the product's review list. Reviews are append-only; there is no edit or delete.
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param review body models.AddReviewRequest true "Review details"
// @Success 201 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{id}/reviews [post]
func AddReview(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The review store only accepts reviews for products that exist.
	var exists models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Select("id").
		First(&exists, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[store.reviews] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	review := models.Review{
		ProductID: productID,
		Author:    req.Author,
		Rating:    req.Rating,
		Title:     req.Title,
		Text:      req.Text,
		DateLabel: time.Now().Format("Jan 02, 2006"),
		Type:      models.ReviewTypeUser,
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&review).Error; err != nil {
		log.Printf("[store.reviews] failed to create review: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review submitted successfully", review))
}
