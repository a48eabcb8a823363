package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetOrders godoc
// @Summary Get the current user's order history
// @Description Returns the user's orders, newest first, each with its snapshotted line items.
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var orders []models.Order
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		log.Printf("[user.orders] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	history := make([]models.OrderHistoryResponse, 0, len(orders))
	for _, o := range orders {
		history = append(history, o.ToHistoryResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", history))
}
