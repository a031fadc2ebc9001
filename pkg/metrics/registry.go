// Package metrics provides Prometheus metrics collection for vimkit.
//
// All metrics are optional. If InitRegistry is never called, the
// constructors return nil and the instrumented components fall back to
// their built-in no-op implementations, so a library consumer pays nothing
// for instrumentation it does not enable.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// registry is the process-wide Prometheus registry for vimkit metrics.
	// Write-once via registryOnce, read-many afterwards.
	registry     *prometheus.Registry
	registryOnce sync.Once
)

// InitRegistry initializes the metrics registry. Safe to call multiple
// times; only the first call has an effect.
func InitRegistry() {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()
	})
}

// GetRegistry returns the registry, or nil when metrics are disabled.
//
// The sync.Once in InitRegistry provides the happens-before edge that makes
// the unsynchronized read here safe.
func GetRegistry() *prometheus.Registry {
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	return GetRegistry() != nil
}
