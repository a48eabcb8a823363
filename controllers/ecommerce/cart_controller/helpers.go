package cart_controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
)

// Carts live in Redis as one JSON document per user. All mutations go
// load -> pure cart op -> save, so the stored value is always a settled
// aggregate and derived totals can be recomputed from it at any time.

const cartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

func loadCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	raw, err := config.RedisClient.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart []models.CartItem
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

func saveCart(ctx context.Context, userID string, cart []models.CartItem) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := config.RedisClient.Set(ctx, cartKey(userID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// ClearCart deletes the user's cart document. Used by checkout.
func ClearCart(ctx context.Context, userID string) error {
	return config.RedisClient.Del(ctx, cartKey(userID)).Err()
}

// LoadCart exposes cart loading to the checkout flow.
func LoadCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	return loadCart(ctx, userID)
}
