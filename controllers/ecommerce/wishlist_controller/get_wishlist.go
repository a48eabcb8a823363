package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GetWishlist godoc
// @Summary Get the current user's wishlist
// @Description Returns the wishlisted products hydrated from the catalog. Products deleted from the catalog silently drop out.
// @Tags User - Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/wishlist [get]
func GetWishlist(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids, err := loadWishlistIDs(ctx, userID.(string))
	if err != nil {
		log.Printf("[user.wishlist] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	products := []models.Product{}
	if len(ids) > 0 {
		if err := config.StoreGorm.WithContext(ctx).
			Where("id IN ?", ids).
			Order("created_at ASC").
			Find(&products).Error; err != nil {
			log.Printf("[user.wishlist] hydrate failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", models.WishlistResponse{
		Items: products,
		Count: len(products),
	}))
}
