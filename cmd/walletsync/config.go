package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
)

// envPrefix prefixes every environment variable read by the process.
const envPrefix = "WALLETSYNC"

type config struct {
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"walletsync" validate:"required"`
	PollInterval     time.Duration `envconfig:"POLL_INTERVAL" default:"3s" validate:"gt=0"`

	// Without RedisAddr the selection only lives as long as the process.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	NodeURL      string `envconfig:"NODE_URL" default:"http://localhost:8545" validate:"required,url"`
	KeystoreDir  string `envconfig:"KEYSTORE_DIR" validate:"omitempty,dir"`
	ExtensionURL string `envconfig:"EXTENSION_URL" validate:"omitempty,url"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`
}

// loadConfig reads the configuration from the WALLETSYNC_* environment.
func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	return cfg, validator.Validate(cfg)
}
