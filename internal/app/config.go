package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Addr          string `envconfig:"ADDR" default:":8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev        bool   `envconfig:"LOG_DEV" default:"false"`
	CacheCapacity int    `envconfig:"CACHE_CAPACITY" default:"256"`
}

// Load reads configuration from HASHICON_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("hashicon", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
