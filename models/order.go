package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the forward-only transition graph. Cancellation is
// allowed only while the order has not shipped.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Address is the shipping address snapshot embedded in an order.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Address")
	}
	return json.Unmarshal(bytes, a)
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Order is the checkout snapshot. Created once; only Status (and the
// matching *At stamp) mutates afterwards. TotalAmount is frozen at
// creation time and never recomputed from current product prices.
type Order struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID          uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Subtotal        float64     `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Tax             float64     `json:"tax" gorm:"type:numeric(12,2);not null"`
	ShippingCost    float64     `json:"shipping_cost" gorm:"type:numeric(12,2);not null"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ShippingAddress Address     `json:"shipping_address" gorm:"type:jsonb;not null;default:'{}'"`
	PaymentMethod   string      `json:"payment_method" gorm:"not null"`
	CreatedAt       time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	ShippedAt       *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one cart line frozen into an order. Price is the unit price
// at the moment of checkout.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Image       string    `json:"image"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CreateOrderRequest is the checkout payload. Items come from the server
// side cart, not the request; the client only picks how to pay and where
// to ship.
type CreateOrderRequest struct {
	PaymentMethod   string   `json:"payment_method" binding:"required" example:"Credit Card"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

// OrderHistoryResponse is the condensed list view for a user's order page.
type OrderHistoryResponse struct {
	ID          uuid.UUID   `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	ItemCount   int         `json:"item_count"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ToHistoryResponse condenses the order for the history list. ItemCount
// counts units, not lines, matching the cart badge.
func (o *Order) ToHistoryResponse() OrderHistoryResponse {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return OrderHistoryResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		ItemCount:   count,
		CreatedAt:   o.CreatedAt,
	}
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

type UpdateOrderStatusResponse struct {
	ID          uuid.UUID   `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	ShippedAt   *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
}

// AdminOrderListRow is the back-office order table row.
type AdminOrderListRow struct {
	ID            uuid.UUID   `json:"id"`
	OrderNumber   string      `json:"order_number"`
	CustomerID    uuid.UUID   `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	ItemCount     int         `json:"item_count"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// StoreStatsResponse backs the admin dashboard header cards.
type StoreStatsResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	TotalProducts   int     `json:"total_products"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	TotalCustomers  int     `json:"total_customers"`
}
