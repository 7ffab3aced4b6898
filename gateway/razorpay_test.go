package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	c := NewClient("rzp_test_key", "key_secret", "webhook_secret")
	payload := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_abc"}}}}`)

	assert.True(t, c.VerifyWebhookSignature(payload, signPayload(payload, "webhook_secret")))
}

func TestVerifyWebhookSignatureRejectsWrongSecret(t *testing.T) {
	c := NewClient("rzp_test_key", "key_secret", "webhook_secret")
	payload := []byte(`{"event":"payment.captured"}`)

	assert.False(t, c.VerifyWebhookSignature(payload, signPayload(payload, "another_secret")))
}

func TestVerifyWebhookSignatureRejectsTamperedBody(t *testing.T) {
	c := NewClient("rzp_test_key", "key_secret", "webhook_secret")
	payload := []byte(`{"event":"payment.captured"}`)
	sig := signPayload(payload, "webhook_secret")

	assert.False(t, c.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), sig))
	assert.False(t, c.VerifyWebhookSignature(payload, ""))
}

func TestKey(t *testing.T) {
	c := NewClient("rzp_test_key", "key_secret", "webhook_secret")
	assert.Equal(t, "rzp_test_key", c.Key())
}
