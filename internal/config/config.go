package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Ebay   EbayConfig
}

type ServerConfig struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}

type EbayConfig struct {
	// AppID is optional: without it every search is served by the mock
	// data generator.
	AppID   string        `env:"EBAY_APP_ID"`
	BaseURL string        `env:"EBAY_FINDING_URL" envDefault:"https://svcs.ebay.com/services/search/FindingService/v1"`
	Timeout time.Duration `env:"EBAY_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
