package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetOrderDetails godoc
// @Summary Get a single order (admin)
// @Description Returns the full order with snapshotted items and the customer summary.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=object{order=models.Order,customer=models.UserResponse}}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.orders] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	var customer models.User
	if err := config.StoreGorm.WithContext(ctx).
		First(&customer, "id = ?", order.UserID).Error; err != nil {
		log.Printf("[admin.orders] customer lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", gin.H{
		"order":    order,
		"customer": customer.ToResponse(),
	}))
}
