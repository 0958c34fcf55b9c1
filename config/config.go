package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port                 string
	Env                  string
	MongoURL             string
	MongoDB              string
	StripeSecretKey      string
	StripePublishableKey string
	ServerURL            string // public base URL used in Stripe redirect URLs
	JWTSecret            string
	RedisURL             string // optional; enables the success-redirect guard
	KafkaBrokers         string // optional; enables order.placed events
	KafkaTopic           string
	OrderNotifyEmail     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8086"),
		Env:                  getEnv("APP_ENV", "development"),
		MongoURL:             os.Getenv("MONGO_URL"),
		MongoDB:              getEnv("MONGO_DB", "evently"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		ServerURL:            os.Getenv("SERVER_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		RedisURL:             os.Getenv("REDIS_URL"),
		KafkaBrokers:         os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:           getEnv("ORDER_TOPIC", "order.placed"),
		OrderNotifyEmail:     getEnv("ORDER_NOTIFY_EMAIL", "tickets@evently.local"),
	}

	if cfg.MongoURL == "" || cfg.StripeSecretKey == "" || cfg.ServerURL == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
