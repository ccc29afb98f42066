// Package config handles configuration loading and validation for country-info.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the public CountryInfoService SOAP endpoint.
const DefaultEndpoint = "http://webservices.oorsprong.org/websamples.countryinfo/CountryInfoService.wso"

// Config holds the application configuration.
type Config struct {
	// Endpoint is the SOAP service URL.
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Retries is the number of additional attempts on transient failures.
	Retries int `yaml:"retries"`
	// HistorySize caps the in-memory lookup history.
	HistorySize int `yaml:"history_size"`
	// ExportFile is where the history export is written.
	ExportFile string `yaml:"export_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		TimeoutSeconds: 10,
		Retries:        3,
		HistorySize:    10,
		ExportFile:     "resultados_paises.txt",
	}
}

// Load reads configuration from the given path. If the path is empty or the
// file doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.HistorySize == 0 {
		c.HistorySize = defaults.HistorySize
	}
	if c.ExportFile == "" {
		c.ExportFile = defaults.ExportFile
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1")
	}

	if c.Retries < 0 {
		return fmt.Errorf("retries cannot be negative")
	}

	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1")
	}

	if c.ExportFile == "" {
		return fmt.Errorf("export_file cannot be empty")
	}

	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
