package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin_token cookie.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
