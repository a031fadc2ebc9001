package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	// An explicitly specified file must exist.
	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
client:
  type: simulator
  page_size: 10
  request_timeout: 5s
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Client.PageSize != 10 {
		t.Errorf("Expected page size 10, got %d", cfg.Client.PageSize)
	}
	if cfg.Client.RequestTimeout != 5*time.Second {
		t.Errorf("Expected request timeout 5s, got %v", cfg.Client.RequestTimeout)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Expected metrics to be enabled")
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Client.Type != "simulator" {
		t.Errorf("Expected default client type, got %q", cfg.Client.Type)
	}
	if cfg.Client.PageSize != 100 {
		t.Errorf("Expected default page size, got %d", cfg.Client.PageSize)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfigFile(t, `
client:
  type: soap
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation failure for soap client without endpoint")
	}
}
