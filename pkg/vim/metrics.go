package vim

import "time"

// CollectorMetrics receives observations about property collector traffic.
//
// Implemented by pkg/metrics with Prometheus collectors. A nil
// CollectorMetrics on the property client falls back to a built-in no-op
// implementation, so instrumentation stays optional.
type CollectorMetrics interface {
	// ObservePage records one retrieved page: the RPC that produced it
	// ("retrieve" or "continue"), how many objects it carried, how long
	// the call took, and whether it failed.
	ObservePage(operation string, objects int, duration time.Duration, err error)

	// ObserveCancel records an explicit cursor cancellation.
	ObserveCancel()
}

// noopMetrics is used when no CollectorMetrics is injected.
type noopMetrics struct{}

func (noopMetrics) ObservePage(string, int, time.Duration, error) {}
func (noopMetrics) ObserveCancel()                                {}
