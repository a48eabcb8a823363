package services

import (
	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// Cart aggregation. Every operation returns a new slice rather than
// mutating the input, so derived values (counts, totals) are always
// recomputed from settled state.

// AddToCart adds one unit of product to the cart. If a line with the same
// product id exists its quantity is incremented, otherwise a new line with
// quantity 1 is appended.
func AddToCart(cart []models.CartItem, product models.Product) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart)+1)
	found := false
	for _, item := range cart {
		if item.Product.ID == product.ID {
			item.Quantity++
			found = true
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, models.CartItem{Product: product, Quantity: 1})
	}
	return next
}

// UpdateCartQuantity adjusts the quantity of the line with the given
// product id by delta, floored at 1. Driving a line to zero is only
// possible through RemoveCartItem. Unknown ids are a no-op.
func UpdateCartQuantity(cart []models.CartItem, id uuid.UUID, delta int) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == id {
			item.Quantity += delta
			if item.Quantity < 1 {
				item.Quantity = 1
			}
		}
		next = append(next, item)
	}
	return next
}

// RemoveCartItem deletes the line with the given product id. Absent ids
// are not an error.
func RemoveCartItem(cart []models.CartItem, id uuid.UUID) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == id {
			continue
		}
		next = append(next, item)
	}
	return next
}

// CartItemCount is the sum of quantities over all lines.
func CartItemCount(cart []models.CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}

// CartSubtotal is the sum of price x quantity over all lines.
func CartSubtotal(cart []models.CartItem) float64 {
	subtotal := 0.0
	for _, item := range cart {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// BuildCartResponse assembles the cart payload with derived aggregates.
func BuildCartResponse(cart []models.CartItem) models.CartResponse {
	if cart == nil {
		cart = []models.CartItem{}
	}
	return models.CartResponse{
		Items:     cart,
		ItemCount: CartItemCount(cart),
		Subtotal:  CartSubtotal(cart),
	}
}
