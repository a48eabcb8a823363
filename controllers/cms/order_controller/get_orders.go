package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetOrders godoc
// @Summary Get all orders
// @Description Back-office order table: every order joined with its customer, newest first, with optional status filter.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Filter by status"
// @Success 200 {object} models.ApiResponse{data=[]models.AdminOrderListRow}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT o.id, o.order_number, o.user_id, u.name, u.email,
		       COALESCE(SUM(oi.quantity), 0) AS item_count,
		       o.total_amount, o.status, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN order_items oi ON oi.order_id = o.id`
	args := []interface{}{}

	if status := models.OrderStatus(c.Query("status")); status != "" {
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
			return
		}
		query += ` WHERE o.status = $1`
		args = append(args, status)
	}

	query += `
		GROUP BY o.id, u.name, u.email
		ORDER BY o.created_at DESC
		LIMIT ` + strconv.Itoa(limit) + ` OFFSET ` + strconv.Itoa(offset)

	rows, err := config.StorePool.Query(ctx, query, args...)
	if err != nil {
		log.Printf("[admin.orders] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	defer rows.Close()

	orders := make([]models.AdminOrderListRow, 0)
	for rows.Next() {
		var row models.AdminOrderListRow
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.CustomerID, &row.CustomerName,
			&row.CustomerEmail, &row.ItemCount, &row.TotalAmount, &row.Status, &row.CreatedAt); err != nil {
			log.Printf("[admin.orders] scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
			return
		}
		orders = append(orders, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.orders] rows error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
