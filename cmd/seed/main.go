package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the store schema and loads the starter catalog, a demo
// customer, and the super admin.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("KHEMIXALL - Store Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.Product{},
		&models.Review{},
		&models.User{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedProducts()
	seedDemoUser()
	seedAdmin()

	fmt.Println()
	fmt.Println("✅ Seeding complete")
	fmt.Println("Next: go run main.go")
}

func seedProducts() {
	var count int64
	if err := config.StoreGorm.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Product count failed: %v", err)
	}
	if count > 0 {
		log.Printf("✓ Catalog already has %d products, skipping", count)
		return
	}

	products := starterCatalog()
	if err := config.StoreGorm.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))

	seedReviews(products)
}

func seedReviews(products []models.Product) {
	reviews := []models.Review{
		{
			ProductID: products[0].ID,
			Author:    "Dr. Amara Osei",
			Rating:    5,
			Title:     strPtr("Excellent for cardiology rounds"),
			Text:      "The noise cancellation makes auscultation in a busy ward noticeably easier. App pairing was instant.",
			DateLabel: "Aug 12, 2026",
			Type:      models.ReviewTypeSeeded,
		},
		{
			ProductID: products[0].ID,
			Author:    "Nurse K. Mensah",
			Rating:    4,
			Text:      "Great sound quality, though the battery cover feels a little loose.",
			DateLabel: "Jul 30, 2026",
			Type:      models.ReviewTypeSeeded,
		},
		{
			ProductID: products[7].ID,
			Author:    "Verified Buyer",
			Rating:    4,
			Title:     strPtr("Works fast"),
			Text:      "Relief within minutes on my knee. No strong smell, absorbs quickly.",
			DateLabel: "Aug 03, 2026",
			Type:      models.ReviewTypeSeeded,
		},
	}

	if err := config.StoreGorm.Create(&reviews).Error; err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}
	log.Printf("✓ Seeded %d reviews", len(reviews))
}

func seedDemoUser() {
	email := "demo@khemixall.com"

	var existing models.User
	err := config.StoreGorm.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("✓ Demo user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := services.GetAuthService().HashPassword("demo-password")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := models.User{
		Name:         "Demo Customer",
		Email:        email,
		PasswordHash: &hash,
		Provider:     "password",
	}
	if err := config.StoreGorm.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("✓ Demo user created: %s / demo-password", email)
}

func seedAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}

	var existing models.Admin
	err := config.StoreGorm.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("✓ Admin already exists: %s", email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := services.GetAuthService().HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.Admin{
		Name:         "Store Admin",
		Email:        email,
		PasswordHash: hash,
		Status:       "active",
	}
	if err := config.StoreGorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin created: %s", email)
}

func starterCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "Digital Stethoscope Pro",
			Description: "Advanced digital stethoscope with noise cancellation and app integration for heart sound analysis.",
			Price:       299.99,
			Category:    models.CategoryEquipment,
			Image:       "https://images.unsplash.com/photo-1631217868264-e5b90bb7e133?auto=format&fit=crop&w=800&q=80",
			Rating:      4.8,
			Reviews:     124,
			InStock:     true,
			Brand:       "MediTech",
			Features:    models.FeatureList{"Digital", "Bluetooth", "Noise Cancellation"},
		},
		{
			Name:        "Immunity Multi-Vitamin Complex",
			Description: "Comprehensive daily supplement supporting immune system health with Zinc, Vitamin C, and D3.",
			Price:       24.50,
			Category:    models.CategoryWellness,
			Image:       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&w=800&q=80",
			Rating:      4.5,
			Reviews:     850,
			InStock:     true,
			Brand:       "VitalLife",
			Features:    models.FeatureList{"Organic", "Gluten-Free", "Non-GMO"},
		},
		{
			Name:        "Clinical Grade Pulse Oximeter",
			Description: "Accurate blood oxygen saturation (SpO2) and pulse rate monitor.",
			Price:       45.00,
			Category:    models.CategoryEquipment,
			Image:       "https://images.unsplash.com/photo-1583324113626-70df0f4deaab?auto=format&fit=crop&w=800&q=80",
			Rating:      4.6,
			Reviews:     320,
			InStock:     true,
			Brand:       "MediTech",
			Features:    models.FeatureList{"Digital", "Portable", "Battery Included"},
		},
		{
			Name:        "Premium First Aid Kit (Professional)",
			Description: "200-piece industrial first aid kit suitable for offices and small clinics.",
			Price:       89.99,
			Category:    models.CategorySupplies,
			Image:       "https://images.unsplash.com/photo-1603398938378-e54eab446dde?auto=format&fit=crop&w=800&q=80",
			Rating:      4.9,
			Reviews:     56,
			InStock:     true,
			Brand:       "SafetyFirst",
			Features:    models.FeatureList{"Comprehensive", "Sterile", "Compact"},
		},
		{
			Name:        "Non-Contact Infrared Thermometer",
			Description: "Instant and accurate temperature readings without physical contact.",
			Price:       35.99,
			Category:    models.CategoryEquipment,
			Image:       "https://images.unsplash.com/photo-1584634731339-252c581abfc5?auto=format&fit=crop&w=800&q=80",
			Rating:      4.4,
			Reviews:     2100,
			InStock:     true,
			Brand:       "MediTech",
			Features:    models.FeatureList{"Non-Contact", "Digital", "Instant Read"},
		},
		{
			Name:        "Organic Whey Protein Isolate",
			Description: "Grass-fed whey protein for recovery and muscle support. Unflavored, medical grade.",
			Price:       55.00,
			Category:    models.CategoryWellness,
			Image:       "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?auto=format&fit=crop&w=800&q=80",
			Rating:      4.7,
			Reviews:     112,
			InStock:     true,
			Brand:       "VitalLife",
			Features:    models.FeatureList{"Organic", "Gluten-Free", "High Protein"},
		},
		{
			Name:        "Sterile Surgical Gloves (Box of 100)",
			Description: "Powder-free, latex-free nitrile exam gloves.",
			Price:       18.50,
			Category:    models.CategorySupplies,
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=800&q=80",
			Rating:      4.8,
			Reviews:     430,
			InStock:     true,
			Brand:       "SafeHands",
			Features:    models.FeatureList{"Sterile", "Latex-Free", "Disposable"},
		},
		{
			Name:        "Khemixall Pain Relief Gel",
			Description: "Fast-acting topical analgesic for arthritis and muscle pain.",
			Price:       12.99,
			Category:    models.CategoryPharmaceuticals,
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&w=800&q=80",
			Rating:      4.3,
			Reviews:     150,
			InStock:     true,
			Brand:       "Khemixall Pharma",
			Features:    models.FeatureList{"Fast-Acting", "Topical", "Pain Relief"},
		},
	}
}

func strPtr(s string) *string { return &s }
