package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the Cloudinary client used by image uploads.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Uploads an image to Cloudinary and returns the secure URL to use as the product image field.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} models.ApiResponse{data=object{url=string}}
// @Failure 400 {object} models.ApiResponse "Missing or invalid file"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Upload failed"
// @Router /admin/products/upload-image [post]
func UploadProductImage(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	url, err := cloudinaryService.UploadProductImage(ctx, file, "")
	if err != nil {
		log.Printf("[admin.products] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", gin.H{"url": url}))
}
