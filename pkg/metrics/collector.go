package metrics

import (
	"time"

	"github.com/marmos91/vimkit/pkg/vim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// collectorMetrics is the Prometheus implementation of the
// vim.CollectorMetrics interface: per-page operation counts and latency,
// objects returned, and explicit cursor cancellations.
type collectorMetrics struct {
	pagesTotal         *prometheus.CounterVec
	objectsTotal       prometheus.Counter
	cancellationsTotal prometheus.Counter
	pageDuration       *prometheus.HistogramVec
}

// NewCollectorMetrics creates a Prometheus-backed vim.CollectorMetrics.
//
// Returns nil if metrics are not enabled (InitRegistry not called), which
// makes the property client use its built-in no-op implementation.
func NewCollectorMetrics() vim.CollectorMetrics {
	if !IsEnabled() {
		return nil
	}

	reg := GetRegistry()

	return &collectorMetrics{
		pagesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vimkit_collector_pages_total",
				Help: "Property collector pages retrieved, by operation and status",
			},
			[]string{"operation", "status"},
		),
		objectsTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "vimkit_collector_objects_total",
				Help: "Managed objects returned across all retrieved pages",
			},
		),
		cancellationsTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "vimkit_collector_cancellations_total",
				Help: "Server-side cursors cancelled before exhaustion",
			},
		),
		pageDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "vimkit_collector_page_duration_seconds",
				Help: "Latency of property collector page retrievals",
				Buckets: []float64{
					0.005,
					0.01,
					0.025,
					0.05,
					0.1,
					0.25,
					0.5,
					1,
					2.5,
					5,
				},
			},
			[]string{"operation"},
		),
	}
}

func (m *collectorMetrics) ObservePage(operation string, objects int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.pagesTotal.WithLabelValues(operation, status).Inc()
	m.objectsTotal.Add(float64(objects))
	m.pageDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *collectorMetrics) ObserveCancel() {
	m.cancellationsTotal.Inc()
}
