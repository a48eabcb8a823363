package services

import (
	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// ToggleWishlist flips a product's membership in the wishlist: present
// means remove, absent means append. Pure set semantics, no quantities.
// Returns the new list plus whether the product ended up added.
func ToggleWishlist(wishlist []models.Product, product models.Product) ([]models.Product, bool) {
	next := make([]models.Product, 0, len(wishlist)+1)
	removed := false
	for _, p := range wishlist {
		if p.ID == product.ID {
			removed = true
			continue
		}
		next = append(next, p)
	}
	if !removed {
		next = append(next, product)
	}
	return next, !removed
}

// InWishlist reports set membership by product id.
func InWishlist(wishlist []models.Product, id uuid.UUID) bool {
	for _, p := range wishlist {
		if p.ID == id {
			return true
		}
	}
	return false
}
