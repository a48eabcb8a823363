package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetStoreStats godoc
// @Summary Store dashboard stats
// @Description Aggregate revenue, order, product, and customer counts for the admin dashboard. Cancelled orders are excluded from revenue.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.StoreStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/stats [get]
func GetStoreStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.StoreStatsResponse

	err := config.StorePool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status != 'Cancelled'), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE NOT in_stock),
			(SELECT COUNT(*) FROM users)
		FROM orders`).Scan(
		&stats.TotalRevenue,
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.TotalProducts,
		&stats.OutOfStockCount,
		&stats.TotalCustomers,
	)
	if err != nil {
		log.Printf("[admin.stats] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}
