package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a cookie, and redirecting to Google's consent page.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 503 {object} models.ApiResponse "Google login not configured"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google login is not configured"))
		return
	}

	state := uuid.New().String()

	c.SetCookie(
		"oauth_state",
		state,
		3600, // 1 hour
		"/",
		"",
		false,
		true, // httpOnly
	)
	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
