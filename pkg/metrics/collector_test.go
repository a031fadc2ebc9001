package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestNewCollectorMetrics_DisabledReturnsNil(t *testing.T) {
	// InitRegistry has not run yet in this test binary.
	if IsEnabled() {
		t.Skip("registry already initialized by another test")
	}
	if m := NewCollectorMetrics(); m != nil {
		t.Error("Expected nil metrics while the registry is disabled")
	}
}

func TestCollectorMetrics_Observations(t *testing.T) {
	InitRegistry()
	if !IsEnabled() {
		t.Fatal("Expected registry to be enabled after InitRegistry")
	}

	m := NewCollectorMetrics()
	if m == nil {
		t.Fatal("Expected metrics instance with the registry enabled")
	}

	// Observations must not panic for either status.
	m.ObservePage("retrieve", 10, 5*time.Millisecond, nil)
	m.ObservePage("continue", 0, time.Millisecond, errors.New("boom"))
	m.ObserveCancel()
}
