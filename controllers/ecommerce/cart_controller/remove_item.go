package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

// RemoveCartItem godoc
// @Summary Remove a line from the cart
// @Description Deletes the line with the given product id. Removing an absent product is not an error.
// @Tags User - Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
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

	cart = services.RemoveCartItem(cart, productID)

	if err := saveCart(ctx, userID.(string), cart); err != nil {
		log.Printf("[user.cart] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", services.BuildCartResponse(cart)))
}
