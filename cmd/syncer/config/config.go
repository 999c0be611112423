package config

import (
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	DBPath      string        `env:"DB_PATH" envDefault:"shopify_sync.db"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	Shopify  Shopify
	RabbitMQ RabbitMQ
}

// Shopify holds shop API configuration.
type Shopify struct {
	Store       string        `env:"SHOPIFY_STORE"`
	APIToken    string        `env:"SHOPIFY_API_TOKEN"`
	APIVersion  string        `env:"SHOPIFY_API_VERSION" envDefault:"2024-10"`
	PageSize    int           `env:"PAGE_SIZE" envDefault:"250"`
	MaxAttempts int           `env:"MAX_FETCH_ATTEMPTS" envDefault:"5"`
	Lookback    time.Duration `env:"WATERMARK_LOOKBACK" envDefault:"60s"`
}

// BaseURL returns base URL of the shop's REST API, including the API version prefix.
func (s Shopify) BaseURL() string {
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", s.Store, s.APIVersion)
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"shopify-sync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"shopify-sync.commands"`
}
