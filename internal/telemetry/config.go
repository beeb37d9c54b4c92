package telemetry

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the exporter settings read from the environment.
type Config struct {
	APIKey   string `env:"HONEYCOMB_CASINOBREAKOUT_API_KEY"`
	Dataset  string `env:"HONEYCOMB_CASINOBREAKOUT_DATASET" envDefault:"casinobreakout"`
	Endpoint string `env:"CASINOBREAKOUT_OTLP_ENDPOINT"     envDefault:"https://api.honeycomb.io"`
}

// LoadConfigFromEnv reads the exporter settings from the environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse telemetry env: %w", err)
	}
	return cfg, nil
}

// Headers returns the OTLP header string, or "" when no API key is set.
func (c Config) Headers() string {
	if c.APIKey == "" {
		return ""
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.APIKey, c.Dataset)
}

// Apply exports the settings as the standard OTEL_* variables read by Setup.
// The .env file may hold an unexpanded header reference, so the headers are
// always rebuilt from the API key.
func (c Config) Apply() error {
	if err := os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Endpoint); err != nil {
		return fmt.Errorf("set endpoint: %w", err)
	}
	if headers := c.Headers(); headers != "" {
		if err := os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers); err != nil {
			return fmt.Errorf("set headers: %w", err)
		}
	}
	return nil
}
