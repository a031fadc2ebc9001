// Package config loads and validates vimkit configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (VIMKIT_*)
//  2. Configuration file (YAML)
//  3. Default values
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configurable aspects of a vimkit consumer: logging,
// the inventory client, and metrics exposure.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Client selects and configures the inventory session
	Client ClientConfig `mapstructure:"client"`

	// Metrics controls Prometheus instrumentation
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// ClientConfig selects the inventory session implementation.
//
// The Type field determines which implementation is used; only the matching
// type-specific section is read.
type ClientConfig struct {
	// Type specifies the session implementation
	// Valid values: simulator, soap
	Type string `mapstructure:"type" validate:"required,oneof=simulator soap"`

	// Endpoint is the service URL; required for the soap type
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`

	// InsecureSkipVerify disables TLS certificate verification
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`

	// PageSize bounds the number of objects per property collector page
	PageSize int `mapstructure:"page_size" validate:"required,gt=0,lte=1000"`

	// RequestTimeout bounds a single collector round trip
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required,gt=0"`

	// Simulator contains simulator-specific configuration
	// Only used when Type = "simulator"
	Simulator map[string]any `mapstructure:"simulator"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	// Enabled turns on the vimkit metrics registry
	Enabled bool `mapstructure:"enabled"`
}

// Load loads configuration from file, environment, and defaults.
//
// An empty configPath falls back to the default location
// ($XDG_CONFIG_HOME/vimkit/config.yaml); a missing file there is not an
// error, defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable support and the config file
// location. Environment variables use the VIMKIT_ prefix with underscores,
// e.g. VIMKIT_LOGGING_LEVEL=DEBUG.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("VIMKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is acceptable, defaults apply.
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory: XDG_CONFIG_HOME if set,
// otherwise ~/.config, falling back to the current directory when the home
// directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "vimkit")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "vimkit")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
