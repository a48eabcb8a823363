package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusDelivered.IsValid())
	assert.False(t, OrderStatus("Refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderToHistoryResponseCountsUnits(t *testing.T) {
	order := Order{
		OrderNumber: "KMX-123456",
		TotalAmount: 100,
		Status:      OrderStatusPending,
		Items: []OrderItem{
			{Quantity: 2},
			{Quantity: 3},
		},
	}

	resp := order.ToHistoryResponse()

	assert.Equal(t, "KMX-123456", resp.OrderNumber)
	assert.Equal(t, 5, resp.ItemCount)
}
