package main

import (
	"log"

	"github.com/evcharge/chargepay/config"
	"github.com/evcharge/chargepay/controllers"
	"github.com/evcharge/chargepay/device"
	"github.com/evcharge/chargepay/gateway"
	"github.com/evcharge/chargepay/routes"
	"github.com/evcharge/chargepay/service"
	"github.com/evcharge/chargepay/store"
	"github.com/evcharge/chargepay/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg := config.LoadConfig()

	// Wire the order pipeline: store -> gateway -> device -> service
	orders := store.NewMemoryStore()
	rzp := gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.WebhookSecret)
	esp := device.NewClient(cfg.DeviceHost)
	svc := service.NewOrderService(orders, rzp, esp)
	ctl := controllers.NewOrderController(svc)

	// Set up router
	router := routes.SetupRouter(ctl)

	utils.LogInfo("Backend listening on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
