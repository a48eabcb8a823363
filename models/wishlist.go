package models

import "github.com/google/uuid"

// WishlistToggleResponse reports the outcome of a wishlist toggle.
type WishlistToggleResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Added     bool      `json:"added"`
}

// WishlistResponse is the hydrated wishlist.
type WishlistResponse struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}
