package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob"
	"github.com/vikions/opipolix-builder-dashboard/pkg/buildersig"
)

// Config represents the application configuration. Built once at startup and
// passed by reference; never mutated afterwards.
type Config struct {
	App     AppConfig              `envPrefix:"APP_"`
	Builder buildersig.Credentials `envPrefix:"BUILDER_"`
	Clob    clob.Config            `envPrefix:"CLOB_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"builder-dashboard"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads the configuration from the environment. A missing builder
// credential makes this fail, so a misconfigured service never serves.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
