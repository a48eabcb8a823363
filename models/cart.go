package models

import "github.com/google/uuid"

// CartItem pairs a product snapshot with a purchase quantity. Identity is
// by product id; quantity is always >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartResponse is the cart payload with its derived aggregates. ItemCount
// and Subtotal are recomputed from Items on every read, never stored.
type CartResponse struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  float64    `json:"subtotal"`
}

// AddCartItemRequest adds one unit of a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateCartQuantityRequest adjusts a line's quantity by a signed delta.
// The resulting quantity is floored at 1; removal is a separate operation.
type UpdateCartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}
