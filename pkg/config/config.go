package config

import "github.com/kelseyhightower/envconfig"

// Config is the cartweb service configuration, read from the environment.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Base URL of the external product API.
	ProductAPIBaseURL string `envconfig:"PRODUCT_API_BASE_URL" default:"http://localhost:3000"`

	// Redis URL for the cart slot. Empty means the in-process store, which
	// only makes sense for dev runs.
	RedisURL string `envconfig:"REDIS_URL" default:""`

	CartSlotKey string `envconfig:"CART_SLOT_KEY" default:"cart"`

	// Product fetches per refresh; 1 keeps the original sequential walk.
	FetchConcurrency int `envconfig:"FETCH_CONCURRENCY" default:"1"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
