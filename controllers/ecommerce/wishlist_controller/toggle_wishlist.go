package wishlist_controller

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

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Adds the product to the wishlist if absent, removes it if present.
// @Tags User - Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.WishlistToggleResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/wishlist/{id} [post]
func ToggleWishlist(c *gin.Context) {
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

	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[user.wishlist] product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle wishlist"))
		return
	}

	key := wishlistKey(userID.(string))
	member := productID.String()

	present, err := config.RedisClient.SIsMember(ctx, key, member).Result()
	if err != nil {
		log.Printf("[user.wishlist] membership check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle wishlist"))
		return
	}

	if present {
		err = config.RedisClient.SRem(ctx, key, member).Err()
	} else {
		err = config.RedisClient.SAdd(ctx, key, member).Err()
	}
	if err != nil {
		log.Printf("[user.wishlist] toggle failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle wishlist"))
		return
	}
	config.RedisClient.Expire(ctx, key, wishlistTTL)

	added := !present
	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.WishlistToggleResponse{
		ProductID: productID,
		Added:     added,
	}))
}
