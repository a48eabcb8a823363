package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgera1/Khemixall-medical-products/models"
)

var (
	stethoscope = models.Product{
		ID:    uuid.MustParse("00000000-0000-0000-0000-00000000000a"),
		Name:  "Digital Stethoscope Pro",
		Price: 299.99,
	}
	painGel = models.Product{
		ID:    uuid.MustParse("00000000-0000-0000-0000-00000000000b"),
		Name:  "Khemixall Pain Relief Gel",
		Price: 12.99,
	}
)

func TestAddToCartNewProductAppendsLine(t *testing.T) {
	cart := AddToCart(nil, stethoscope)

	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, stethoscope.ID, cart[0].Product.ID)
}

func TestAddToCartSameProductIncrementsQuantity(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	cart = AddToCart(cart, stethoscope)

	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCartDoesNotMutateInput(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	AddToCart(cart, stethoscope)

	assert.Equal(t, 1, cart[0].Quantity)
}

func TestUpdateCartQuantityFloorsAtOne(t *testing.T) {
	cart := AddToCart(nil, painGel)
	cart = UpdateCartQuantity(cart, painGel.ID, -100)

	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestUpdateCartQuantityUnknownIDIsNoop(t *testing.T) {
	cart := AddToCart(nil, painGel)
	next := UpdateCartQuantity(cart, stethoscope.ID, 3)

	assert.Equal(t, cart, next)
}

func TestRemoveCartItemAbsentIDIsNoError(t *testing.T) {
	cart := AddToCart(nil, painGel)
	next := RemoveCartItem(cart, stethoscope.ID)

	assert.Equal(t, cart, next)
}

func TestRemoveCartItemDeletesWholeLine(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	cart = AddToCart(cart, stethoscope)
	cart = AddToCart(cart, painGel)

	cart = RemoveCartItem(cart, stethoscope.ID)

	require.Len(t, cart, 1)
	assert.Equal(t, painGel.ID, cart[0].Product.ID)
}

func TestCartAggregates(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	cart = AddToCart(cart, painGel)
	cart = UpdateCartQuantity(cart, painGel.ID, 2)

	assert.Equal(t, 4, CartItemCount(cart))
	assert.InDelta(t, 299.99+3*12.99, CartSubtotal(cart), 1e-9)
}

func TestBuildCartResponseNilCart(t *testing.T) {
	resp := BuildCartResponse(nil)

	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.ItemCount)
	assert.Zero(t, resp.Subtotal)
}
