package auth_controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

const authCookieMaxAge = 24 * 60 * 60 // 24 hours

// setAuthCookie stores the session JWT in an HTTP-only cookie.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		authCookieMaxAge,
		"/",
		"",
		isProd,
		true, // httpOnly
	)
}

func clearAuthCookie(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// createOrUpdateGoogleUser upserts a customer from a Google profile.
// Existing password accounts with the same email get the Google account
// linked; their password login keeps working.
func createOrUpdateGoogleUser(googleUser *models.GoogleUserInfo, googleID string, emailVerified bool) (*models.User, error) {
	var user models.User

	result := config.StoreGorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      &googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
			}
			if err := config.StoreGorm.Create(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"email_verified": emailVerified,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil {
		updates["google_id"] = googleID
	}

	if err := config.StoreGorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	if user.GoogleID == nil {
		user.GoogleID = &googleID
	}
	user.EmailVerified = emailVerified

	return &user, nil
}
