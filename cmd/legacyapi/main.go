// Command legacyapi serves the original two-route product API backed by
// MongoDB. It predates the Postgres storefront and is kept for clients
// that still sync against it.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type legacyProduct struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image" bson:"image"`
	Rating      float64            `json:"rating" bson:"rating"`
	Reviews     int                `json:"reviews" bson:"reviews"`
	InStock     bool               `json:"inStock" bson:"inStock"`
	Brand       string             `json:"brand" bson:"brand"`
	Features    []string           `json:"features" bson:"features"`
}

func init() {
	_ = godotenv.Load()
}

func main() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("MongoDB Connection Error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB Connection Error: %v", err)
	}
	log.Println("MongoDB Connected Successfully")

	products := client.Database("khemixall").Collection("products")

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/api/products", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		cursor, err := products.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		list := make([]legacyProduct, 0)
		if err := cursor.All(ctx, &list); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, list)
	})

	router.POST("/api/products", func(c *gin.Context) {
		var product legacyProduct
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		result, err := products.InsertOne(ctx, product)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			product.ID = oid
		}

		c.JSON(http.StatusCreated, product)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Server running on port %s", port)
	router.Run(":" + port)
}
