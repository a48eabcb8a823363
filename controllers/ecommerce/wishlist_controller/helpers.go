package wishlist_controller

import (
	"context"
	"fmt"
	"time"

	"github.com/pgera1/Khemixall-medical-products/config"
)

// Wishlists are Redis sets of product ids. They expire after 90 days of
// inactivity; every write refreshes the TTL.
const wishlistTTL = 90 * 24 * time.Hour

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:%s", userID)
}

func loadWishlistIDs(ctx context.Context, userID string) ([]string, error) {
	return config.RedisClient.SMembers(ctx, wishlistKey(userID)).Result()
}
