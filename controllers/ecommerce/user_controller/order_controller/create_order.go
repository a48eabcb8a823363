package order_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/controllers/ecommerce/cart_controller"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/services"
)

var paymentGateway services.PaymentGateway = services.NewSimulatedGateway()

// orderNumberRetries bounds the re-roll loop on an order number collision.
const orderNumberRetries = 5

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Builds an order from the current cart, charges the payment gateway, persists the order with frozen prices, and clears the cart.
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.ApiResponse{data=object{order_id=string,order_number=string,total_amount=number}} "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request or empty cart"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 402 {object} models.ApiResponse "Payment declined"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := cart_controller.LoadCart(ctx, userIDStr.(string))
	if err != nil {
		log.Printf("[user.checkout] cart load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}

	var addr models.Address
	if req.ShippingAddress != nil {
		addr = *req.ShippingAddress
	}
	order := services.BuildOrder(userID, cart, addr, req.PaymentMethod, time.Now())

	// Charge before persisting; the gateway delay is the user-visible
	// "processing payment" phase.
	payment, err := paymentGateway.Charge(c.Request.Context(), order.TotalAmount, req.PaymentMethod)
	if err != nil {
		log.Printf("[user.checkout] payment gateway error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Payment processing failed"))
		return
	}
	if payment.Declined {
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse(c, "Payment declined: "+payment.DeclineReason))
		return
	}

	// Order numbers are random; re-roll on the rare unique collision.
	for attempt := 0; ; attempt++ {
		err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < orderNumberRetries {
			order.ID = uuid.Nil
			order.OrderNumber = services.NewOrderNumber()
			continue
		}
		log.Printf("[user.checkout] order insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	if err := cart_controller.ClearCart(ctx, userIDStr.(string)); err != nil {
		// The order exists; a stale cart is recoverable.
		log.Printf("⚠️ [user.checkout] cart clear failed for %s: %v", userIDStr, err)
	}

	// Send the confirmation email asynchronously
	userEmail, _ := c.Get("userEmail")
	userName, _ := c.Get("userName")
	go func(o models.Order) {
		client := services.NewResendClient()
		if client == nil {
			return
		}
		email, _ := userEmail.(string)
		name, _ := userName.(string)
		if email == "" {
			return
		}
		if err := client.SendOrderConfirmation(&o, name, email); err != nil {
			log.Printf("⚠️ [user.checkout] confirmation email failed for %s: %v", o.OrderNumber, err)
		}
	}(order)

	log.Printf("✅ Order %s created for user %s ($%.2f, txn %s)",
		order.OrderNumber, userID, order.TotalAmount, payment.TransactionID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
	}))
}
