package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
}

func TestApplyDefaults_LogLevelNormalized(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "debug"
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized log level 'DEBUG', got %q", cfg.Logging.Level)
	}
}

func TestApplyDefaults_Client(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Client.Type != "simulator" {
		t.Errorf("Expected default client type 'simulator', got %q", cfg.Client.Type)
	}
	if cfg.Client.PageSize != 100 {
		t.Errorf("Expected default page size 100, got %d", cfg.Client.PageSize)
	}
	if cfg.Client.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default request timeout 30s, got %v", cfg.Client.RequestTimeout)
	}
	if cfg.Client.Simulator == nil {
		t.Error("Expected simulator section to be initialized")
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Client.PageSize = 25
	cfg.Client.RequestTimeout = 5 * time.Second
	ApplyDefaults(cfg)

	if cfg.Client.PageSize != 25 {
		t.Errorf("Expected explicit page size 25 to be preserved, got %d", cfg.Client.PageSize)
	}
	if cfg.Client.RequestTimeout != 5*time.Second {
		t.Errorf("Expected explicit timeout 5s to be preserved, got %v", cfg.Client.RequestTimeout)
	}
}
