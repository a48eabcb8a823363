package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
	"github.com/pgera1/Khemixall-medical-products/utils"
)

// SignIn godoc
// @Summary Sign in with email and password
// @Description Authenticates a customer. Unknown emails and wrong passwords both return 401.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/signin [post]
func SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.StoreGorm.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.signin] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	// Google-only accounts have no password hash
	if user.PasswordHash == nil || !services.GetAuthService().VerifyPassword(*user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.signin] token failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
