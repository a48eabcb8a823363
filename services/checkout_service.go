package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pgera1/Khemixall-medical-products/models"
)

const (
	// TaxRate is the flat sales tax applied at checkout. Shipping is free.
	TaxRate = 0.08

	// OrderNumberPrefix + 6 random digits forms the customer-facing order
	// number, e.g. KMX-482913.
	OrderNumberPrefix = "KMX-"
)

// NewOrderNumber generates a customer-facing order number with a 6-digit
// numeric suffix. Uniqueness is enforced by the orders table constraint;
// callers retry on conflict.
func NewOrderNumber() string {
	return fmt.Sprintf("%s%06d", OrderNumberPrefix, 100000+rand.Intn(900000))
}

// BuildOrder synthesizes an order from the cart at the moment of checkout.
// The cart lines are snapshotted into order items, the subtotal is the cart
// subtotal at that same moment, and the total is subtotal plus flat 8% tax
// with free shipping. The totals are frozen here and never recomputed from
// later product prices.
func BuildOrder(userID uuid.UUID, cart []models.CartItem, addr models.Address, paymentMethod string, now time.Time) models.Order {
	subtotal := CartSubtotal(cart)
	tax := subtotal * TaxRate

	order := models.Order{
		OrderNumber:     NewOrderNumber(),
		UserID:          userID,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    0,
		TotalAmount:     subtotal + tax,
		Status:          models.OrderStatusPending,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order.Items = make([]models.OrderItem, 0, len(cart))
	for _, item := range cart {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Name,
			Image:       item.Image,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Price * float64(item.Quantity),
		})
	}

	return order
}

// PaymentResult is the outcome of a charge attempt. Declined is a defined
// branch of the result type so that a real gateway integration only has to
// populate it, not restructure the checkout flow.
type PaymentResult struct {
	TransactionID string
	Declined      bool
	DeclineReason string
}

// PaymentGateway is the asynchronous task boundary in front of payment
// processing.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method string) (PaymentResult, error)
}

// SimulatedGateway models payment as a bounded random delay that always
// succeeds. Once started the charge runs to completion; only context
// cancellation aborts it.
type SimulatedGateway struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// NewSimulatedGateway returns a gateway with the 1-2s latency window the
// storefront was designed around.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{MinDelay: time.Second, MaxDelay: 2 * time.Second}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method string) (PaymentResult, error) {
	delay := g.MinDelay
	if g.MaxDelay > g.MinDelay {
		delay += time.Duration(rand.Int63n(int64(g.MaxDelay - g.MinDelay)))
	}

	select {
	case <-ctx.Done():
		return PaymentResult{}, ctx.Err()
	case <-time.After(delay):
	}

	return PaymentResult{TransactionID: uuid.NewString()}, nil
}
