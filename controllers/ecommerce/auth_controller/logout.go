package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// Logout godoc
// @Summary Logout
// @Description Ends the session by clearing the auth_token cookie.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	clearAuthCookie(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
