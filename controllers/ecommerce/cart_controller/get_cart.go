package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

// GetCart godoc
// @Summary Get the current cart
// @Description Returns the cart lines plus derived item count and subtotal, recomputed from contents.
// @Tags User - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/cart [get]
func GetCart(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := loadCart(ctx, userID.(string))
	if err != nil {
		log.Printf("[user.cart] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", services.BuildCartResponse(cart)))
}
