package config

import (
	"strings"
	"time"
)

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyClientDefaults(&cfg.Client)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Uppercase for a consistent internal representation.
	cfg.Level = strings.ToUpper(cfg.Level)
}

// applyClientDefaults sets client defaults.
func applyClientDefaults(cfg *ClientConfig) {
	if cfg.Type == "" {
		cfg.Type = "simulator"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 100
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.Simulator == nil {
		cfg.Simulator = make(map[string]any)
	}
}
