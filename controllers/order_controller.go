package controllers

import (
	"net/http"

	"github.com/evcharge/chargepay/service"
	"github.com/evcharge/chargepay/utils"
	"github.com/gin-gonic/gin"
)

// OrderController exposes the payment and device endpoints over HTTP.
type OrderController struct {
	svc *service.OrderService
}

// NewOrderController wires the controller to the order service.
func NewOrderController(svc *service.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// CreateOrder handles POST /create-order
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req struct {
		Amount   float64 `json:"amount"`
		TimeMs   int64   `json:"timeMs"`
		Currency string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order request: %v", err)
		utils.BadRequest(c, "Missing amount/timeMs")
		return
	}

	res, err := ctl.svc.CreateOrder(req.Amount, req.TimeMs, req.Currency)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":     res.Order.OrderID,
		"amount":      res.Order.Amount,
		"timeMs":      res.Order.TimeMs,
		"razorpayKey": res.Key,
	})
}

// CheckStatus handles GET /check-status/:orderId
func (ctl *OrderController) CheckStatus(c *gin.Context) {
	order, err := ctl.svc.Status(c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": order.Paid, "order": order})
}

// Webhook handles POST /webhook. The body must be read raw: the signature
// covers the exact bytes Razorpay sent.
func (ctl *OrderController) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctl.svc.HandleWebhook(body, c.GetHeader("X-Razorpay-Signature")); err != nil {
		c.String(http.StatusBadRequest, "invalid signature")
		return
	}

	c.String(http.StatusOK, "ok")
}

// TriggerDevice handles POST /trigger-esp, the manual admin path.
func (ctl *OrderController) TriggerDevice(c *gin.Context) {
	utils.LogInfo("TriggerDevice called")

	var req struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid trigger request: %v", err)
		utils.BadRequest(c, "Missing orderId")
		return
	}

	result, err := ctl.svc.TriggerDevice(c.Request.Context(), req.OrderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

// Health handles GET /health
func (ctl *OrderController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
