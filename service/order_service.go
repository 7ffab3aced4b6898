// Package service orchestrates the order lifecycle: create, status check,
// webhook handling and device triggering.
package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/evcharge/chargepay/models"
	"github.com/evcharge/chargepay/store"
	"github.com/evcharge/chargepay/utils"
)

// PaymentGateway is the slice of the payment provider the service needs.
type PaymentGateway interface {
	CreateOrder(amount float64, currency string) (string, error)
	VerifyWebhookSignature(payload []byte, signature string) bool
	Key() string
}

// DeviceTrigger starts the charging device for an order.
type DeviceTrigger interface {
	Trigger(ctx context.Context, orderID string, timeMs int64) (string, error)
}

// OrderService ties the store, gateway and device client together.
type OrderService struct {
	store   store.OrderStore
	gateway PaymentGateway
	device  DeviceTrigger
}

// NewOrderService wires the service from its injected collaborators.
func NewOrderService(st store.OrderStore, gw PaymentGateway, dev DeviceTrigger) *OrderService {
	return &OrderService{store: st, gateway: gw, device: dev}
}

// CreateOrderResult carries what the client needs to open the checkout UI.
type CreateOrderResult struct {
	Order *models.Order
	Key   string
}

// CreateOrder validates the request, creates a gateway order and records it
// as pending. Amount is in major currency units; timeMs is how long the
// device should run once payment lands.
func (s *OrderService) CreateOrder(amount float64, timeMs int64, currency string) (*CreateOrderResult, error) {
	if amount <= 0 || timeMs <= 0 {
		return nil, utils.ValidationError("Missing amount/timeMs", nil)
	}

	orderID, err := s.gateway.CreateOrder(amount, currency)
	if err != nil {
		utils.LogError("Failed to create gateway order: %v", err)
		return nil, utils.GatewayError("server_error", err)
	}

	order := &models.Order{OrderID: orderID, Amount: amount, TimeMs: timeMs}
	if err := s.store.Save(order); err != nil {
		utils.LogError("Failed to record order %s: %v", orderID, err)
		return nil, utils.GatewayError("server_error", err)
	}

	utils.LogInfo("Created order %s: amount %.2f, time %dms", orderID, amount, timeMs)
	return &CreateOrderResult{Order: order, Key: s.gateway.Key()}, nil
}

// Status returns the order record for client polling.
func (s *OrderService) Status(orderID string) (*models.Order, error) {
	order, err := s.store.Get(orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return nil, utils.NotFoundError("order_not_found", err)
		}
		return nil, err
	}
	return order, nil
}

// HandleWebhook verifies the gateway signature over the raw payload and, for
// payment capture events, marks the order paid and fires the device trigger.
// Only a signature mismatch is an error; once the payload is authenticated
// the webhook always acks so the gateway does not keep retrying for reasons
// unrelated to payment.
func (s *OrderService) HandleWebhook(rawBody []byte, signature string) error {
	if !s.gateway.VerifyWebhookSignature(rawBody, signature) {
		utils.LogError("Webhook rejected: invalid signature")
		return utils.SignatureError("invalid signature")
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		utils.LogError("Failed to decode webhook payload: %v", err)
		return nil
	}

	if event.Event != models.EventPaymentCaptured && event.Event != models.EventPaymentAuthorized {
		utils.LogDebug("Ignoring webhook event %q", event.Event)
		return nil
	}

	orderID := event.Payload.Payment.Entity.OrderID
	order, transitioned, err := s.store.MarkPaid(orderID)
	if err != nil {
		// Non-fatal: the gateway may notify about orders this instance
		// never created.
		utils.LogError("Webhook references unknown order %s", orderID)
		return nil
	}
	if !transitioned {
		utils.LogInfo("Order %s already paid, skipping device trigger", orderID)
		return nil
	}

	utils.LogInfo("Order %s marked paid", orderID)
	go s.triggerForOrder(order)
	return nil
}

// triggerForOrder runs on the webhook path. Device failures are logged and
// never roll back the paid state.
func (s *OrderService) triggerForOrder(order *models.Order) {
	result, err := s.device.Trigger(context.Background(), order.OrderID, order.TimeMs)
	if err != nil {
		utils.LogError("Failed to trigger device for order %s: %v", order.OrderID, err)
		return
	}
	utils.LogInfo("Triggered device for order %s: %s", order.OrderID, result)
}

// TriggerDevice is the administrative escape hatch: it fires the device for
// an order regardless of paid state and surfaces the raw result.
func (s *OrderService) TriggerDevice(ctx context.Context, orderID string) (string, error) {
	order, err := s.store.Get(orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return "", utils.NotFoundError("order_not_found", err)
		}
		return "", err
	}

	result, err := s.device.Trigger(ctx, orderID, order.TimeMs)
	if err != nil {
		utils.LogError("Manual trigger failed for order %s: %v", orderID, err)
		return "", utils.DeviceError("esp_error", err)
	}
	return result, nil
}
