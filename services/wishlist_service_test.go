package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgera1/Khemixall-medical-products/models"
)

func TestToggleWishlistAddsWhenAbsent(t *testing.T) {
	list, added := ToggleWishlist(nil, stethoscope)

	assert.True(t, added)
	require.Len(t, list, 1)
	assert.True(t, InWishlist(list, stethoscope.ID))
}

func TestToggleWishlistRemovesWhenPresent(t *testing.T) {
	list, _ := ToggleWishlist(nil, stethoscope)
	list, added := ToggleWishlist(list, stethoscope)

	assert.False(t, added)
	assert.Empty(t, list)
}

func TestToggleWishlistDoubleToggleRoundTrips(t *testing.T) {
	list := []models.Product{painGel}

	list, _ = ToggleWishlist(list, stethoscope)
	list, _ = ToggleWishlist(list, stethoscope)

	require.Len(t, list, 1)
	assert.Equal(t, painGel.ID, list[0].ID)
}

func TestToggleWishlistHasNoQuantities(t *testing.T) {
	list, _ := ToggleWishlist(nil, stethoscope)
	list, added := ToggleWishlist(list, stethoscope)
	list, added2 := ToggleWishlist(list, stethoscope)

	// Repeated toggles flip membership, never accumulate.
	assert.False(t, added)
	assert.True(t, added2)
	assert.Len(t, list, 1)
}
