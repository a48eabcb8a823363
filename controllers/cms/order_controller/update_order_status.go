package order_controller

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

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Moves an order along the forward-only status graph. Shipped and Delivered stamp their timestamps; illegal transitions return 409.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param request body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse "Invalid order ID or status"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 409 {object} models.ApiResponse "Illegal status transition"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(req.Status) {
			return errIllegalTransition
		}

		now := time.Now()
		updates := map[string]interface{}{"status": req.Status}
		switch req.Status {
		case models.OrderStatusShipped:
			updates["shipped_at"] = now
			order.ShippedAt = &now
		case models.OrderStatusDelivered:
			updates["delivered_at"] = now
			order.DeliveredAt = &now
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}
		order.Status = req.Status
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		case errors.Is(err, errIllegalTransition):
			c.JSON(http.StatusConflict, models.ErrorResponse(c,
				"Cannot move order from "+string(order.Status)+" to "+string(req.Status)))
		default:
			log.Printf("[admin.orders] status update failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		}
		return
	}

	log.Printf("✅ Order %s status -> %s", order.OrderNumber, order.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", models.UpdateOrderStatusResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		ShippedAt:   order.ShippedAt,
		DeliveredAt: order.DeliveredAt,
	}))
}

var errIllegalTransition = errors.New("illegal status transition")
