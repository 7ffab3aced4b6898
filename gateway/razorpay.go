// Package gateway wraps the Razorpay API so its request and response
// shapes stay confined to one place.
package gateway

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
)

// Client is the payment gateway adapter.
type Client struct {
	keyID         string
	webhookSecret string
	rzp           *razorpay.Client
}

// NewClient builds a gateway client from the key pair and webhook secret.
func NewClient(keyID, keySecret, webhookSecret string) *Client {
	return &Client{
		keyID:         keyID,
		webhookSecret: webhookSecret,
		rzp:           razorpay.NewClient(keyID, keySecret),
	}
}

// Key returns the public key id the checkout UI needs.
func (c *Client) Key() string {
	return c.keyID
}

// CreateOrder creates an immediate-capture order for the given amount in
// major currency units and returns the gateway's order id. Razorpay expects
// the amount in paise.
func (c *Client) CreateOrder(amount float64, currency string) (string, error) {
	if currency == "" {
		currency = "INR"
	}

	orderData := map[string]interface{}{
		"amount":          int(math.Round(amount * 100)),
		"currency":        currency,
		"receipt":         "rcpt_" + uuid.NewString(),
		"payment_capture": 1,
	}

	order, err := c.rzp.Order.Create(orderData, nil)
	if err != nil {
		return "", fmt.Errorf("create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature Razorpay sends
// over the exact raw webhook body. The comparison is constant-time.
func (c *Client) VerifyWebhookSignature(payload []byte, signature string) bool {
	return rzputils.VerifyWebhookSignature(string(payload), signature, c.webhookSecret)
}
