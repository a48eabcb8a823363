// @title Khemixall Medical Products API
// @version 1.0
// @description Khemixall medical supply storefront and back-office API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/controllers/cms/product_controller"
	"github.com/pgera1/Khemixall-medical-products/middleware"
	"github.com/pgera1/Khemixall-medical-products/routes/cms_routes"
	"github.com/pgera1/Khemixall-medical-products/routes/ecommerce_routes"
	"github.com/pgera1/Khemixall-medical-products/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ CLOUDINARY_CLOUD_NAME not set, image uploads disabled")
	}

	// JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Google OAuth (optional; storefront falls back to password auth)
	config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Admin auth + dashboard (login stays outside the rate limiter's group
	// so a locked-out admin can still sign in)
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)

	// Public storefront and customer routes (no rate limiter)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
