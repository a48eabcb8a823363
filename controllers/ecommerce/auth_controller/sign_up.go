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

// SignUp godoc
// @Summary Register a new customer
// @Description Creates a customer account with an email and password and starts a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignUpRequest true "Registration payload"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/signup [post]
func SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.StoreGorm.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth.signup] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := services.GetAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.signup] hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
		Provider:     "password",
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.signup] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.signup] token failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}
	setAuthCookie(c, token)

	log.Printf("✅ New customer registered: %s", user.Email)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
