package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// ResendClient sends transactional email via the Resend API. Nil when no
// API key is configured; callers skip sending in that case.
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient returns nil if RESEND_API_KEY is not set, so email stays
// an optional collaborator.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "orders@khemixall.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from}
}

// SendOrderConfirmation sends the post-checkout confirmation email.
func (r *ResendClient) SendOrderConfirmation(order *models.Order, customerName, customerEmail string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      []string{customerEmail},
		"subject": fmt.Sprintf("Khemixall order %s confirmed", order.OrderNumber),
		"html":    r.buildOrderConfirmationHTML(order, customerName),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] send failed status=%d body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	return nil
}

func (r *ResendClient) buildOrderConfirmationHTML(order *models.Order, customerName string) string {
	var items bytes.Buffer
	for _, item := range order.Items {
		fmt.Fprintf(&items,
			`<tr><td style="padding:6px 0">%s &times;%d</td><td style="text-align:right">Rs %.2f</td></tr>`,
			item.ProductName, item.Quantity, item.Subtotal)
	}

	return fmt.Sprintf(`
<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto">
  <h2 style="color:#059669">Khemixall Medical Supply</h2>
  <p>Hi %s, thanks for your order. Here is your summary:</p>
  <p><strong>Order %s</strong> &mdash; %s</p>
  <table style="width:100%%;border-collapse:collapse">%s</table>
  <hr>
  <table style="width:100%%">
    <tr><td>Subtotal</td><td style="text-align:right">Rs %.2f</td></tr>
    <tr><td>Tax (8%%)</td><td style="text-align:right">Rs %.2f</td></tr>
    <tr><td>Shipping</td><td style="text-align:right">Free</td></tr>
    <tr><td><strong>Total</strong></td><td style="text-align:right"><strong>Rs %.2f</strong></td></tr>
  </table>
  <p style="color:#6b7280;font-size:12px">Ships to: %s, %s %s, %s</p>
</div>`,
		customerName,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 02, 2006"),
		items.String(),
		order.Subtotal,
		order.Tax,
		order.TotalAmount,
		order.ShippingAddress.Street,
		order.ShippingAddress.City,
		order.ShippingAddress.Zip,
		order.ShippingAddress.Country,
	)
}
