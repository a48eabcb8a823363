package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgera1/Khemixall-medical-products/models"
)

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^KMX-\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewOrderNumber())
	}
}

func TestBuildOrderFreezesTotals(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	cart = AddToCart(cart, painGel)
	cart = UpdateCartQuantity(cart, painGel.ID, 2)
	subtotal := CartSubtotal(cart)

	now := time.Now()
	order := BuildOrder(uuid.New(), cart, models.Address{City: "Accra"}, "Credit Card", now)

	assert.InDelta(t, subtotal, order.Subtotal, 1e-9)
	assert.InDelta(t, subtotal*0.08, order.Tax, 1e-9)
	assert.Zero(t, order.ShippingCost)
	assert.InDelta(t, subtotal*1.08, order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Credit Card", order.PaymentMethod)
	assert.Equal(t, "Accra", order.ShippingAddress.City)
	assert.Equal(t, now, order.CreatedAt)
}

func TestBuildOrderSnapshotsCartLines(t *testing.T) {
	cart := AddToCart(nil, stethoscope)
	cart = AddToCart(cart, painGel)
	cart = UpdateCartQuantity(cart, painGel.ID, 1)

	order := BuildOrder(uuid.New(), cart, models.Address{}, "PayPal", time.Now())

	require.Len(t, order.Items, 2)
	assert.Equal(t, stethoscope.ID, order.Items[0].ProductID)
	assert.Equal(t, stethoscope.Name, order.Items[0].ProductName)
	assert.InDelta(t, stethoscope.Price, order.Items[0].Price, 1e-9)
	assert.Equal(t, 1, order.Items[0].Quantity)

	assert.Equal(t, 2, order.Items[1].Quantity)
	assert.InDelta(t, 2*painGel.Price, order.Items[1].Subtotal, 1e-9)
}

func TestBuildOrderTotalForKnownBasket(t *testing.T) {
	// Two stethoscopes at 299.99 plus three gels at 12.99 with 8% tax.
	cart := AddToCart(nil, stethoscope)
	cart = UpdateCartQuantity(cart, stethoscope.ID, 1)
	cart = AddToCart(cart, painGel)
	cart = UpdateCartQuantity(cart, painGel.ID, 2)

	order := BuildOrder(uuid.New(), cart, models.Address{}, "Credit Card", time.Now())

	assert.InDelta(t, 638.95, order.Subtotal, 1e-9)
	assert.InDelta(t, 690.066, order.TotalAmount, 1e-9)
}

func TestBuildOrderTotalForRoundPrices(t *testing.T) {
	steth := models.Product{ID: uuid.New(), Name: "Stethoscope", Price: 300}
	gel := models.Product{ID: uuid.New(), Name: "Gel", Price: 13}

	cart := AddToCart(nil, steth)
	cart = AddToCart(cart, gel)
	cart = UpdateCartQuantity(cart, gel.ID, 2)

	order := BuildOrder(uuid.New(), cart, models.Address{}, "Credit Card", time.Now())

	assert.InDelta(t, 339.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 366.12, order.TotalAmount, 1e-9)
}

func TestSimulatedGatewayDelayIsBounded(t *testing.T) {
	gw := &SimulatedGateway{MinDelay: 10 * time.Millisecond, MaxDelay: 30 * time.Millisecond}

	start := time.Now()
	result, err := gw.Charge(context.Background(), 100, "Credit Card")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, result.Declined)
	assert.NotEmpty(t, result.TransactionID)
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	assert.Less(t, elapsed, 200*time.Millisecond)
}

func TestSimulatedGatewayHonorsContextCancel(t *testing.T) {
	gw := &SimulatedGateway{MinDelay: time.Second, MaxDelay: 2 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.Charge(ctx, 100, "Credit Card")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
