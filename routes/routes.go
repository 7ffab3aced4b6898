package routes

import (
	"github.com/evcharge/chargepay/controllers"
	"github.com/evcharge/chargepay/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(ctl *controllers.OrderController) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", ctl.Health)
	router.POST("/create-order", ctl.CreateOrder)
	router.GET("/check-status/:orderId", ctl.CheckStatus)
	router.POST("/webhook", ctl.Webhook)
	router.POST("/trigger-esp", ctl.TriggerDevice)

	return router
}
