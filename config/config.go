package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	RazorpayKeyID     string
	RazorpayKeySecret string
	WebhookSecret     string
	DeviceHost        string
	Port              string
	Env               string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; the process environment still applies. The fallback
// values are demo placeholders and must be overridden for any real deployment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", "XYZ_RAZORPAY_KEY_ID"),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", "XYZ_RAZORPAY_KEY_SECRET"),
		WebhookSecret:     getEnv("RAZORPAY_WEBHOOK_SECRET", "XYZ_WEBHOOK_SECRET"),
		DeviceHost:        getEnv("ESP32_IP", "192.168.1.45"),
		Port:              getEnv("PORT", "3000"),
		Env:               getEnv("ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
