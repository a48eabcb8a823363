package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// StorePool is the raw pgx pool, used for hand-written aggregate queries.
	StorePool *pgxpool.Pool

	// StoreGorm is the GORM handle for the catalog/order store.
	StoreGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func storeURL() string {
	if url := os.Getenv("STORE_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ STORE_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/khemixall_store?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx() {
	var err error
	StorePool, err = pgxpool.New(context.Background(), storeURL())
	if err != nil {
		log.Fatalf("❌ Unable to connect to store database: %v", err)
	}

	if err = StorePool.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Store database ping failed: %v", err)
	}

	log.Println("✅ Store database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	StoreGorm, err = gorm.Open(postgres.Open(storeURL()), &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to store database with GORM: %v", err)
	}

	if sqlDB, err := StoreGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	log.Println("✅ Store database connected (GORM)")
}

func CloseDB() {
	if StorePool != nil {
		StorePool.Close()
		log.Println("✅ Store database connection closed (pgx)")
	}
	if StoreGorm != nil {
		if sqlDB, _ := StoreGorm.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Store database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for request-scoped
// database work.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
