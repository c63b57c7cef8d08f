package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ExportMetrics records document export renders.
type ExportMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewExportMetrics registers the export metrics on the provided registerer.
func NewExportMetrics(reg prometheus.Registerer) *ExportMetrics {
	if reg == nil {
		return &ExportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "export_duration_seconds",
		Help:    "Duration of PDF/PNG renders in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"format", "renderer"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "export_success",
		Help: "Successful document exports.",
	}, []string{"format", "renderer"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "export_failure",
		Help: "Failed document exports.",
	}, []string{"format", "renderer"})
	reg.MustRegister(duration, success, failure)
	return &ExportMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records a render duration.
func (e *ExportMetrics) ObserveDuration(format, renderer string, duration time.Duration) {
	if e == nil || e.duration == nil {
		return
	}
	e.duration.WithLabelValues(normalizeLabel(format), normalizeLabel(renderer)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter.
func (e *ExportMetrics) IncSuccess(format, renderer string) {
	if e == nil || e.success == nil {
		return
	}
	e.success.WithLabelValues(normalizeLabel(format), normalizeLabel(renderer)).Inc()
}

// IncFailure increments the failure counter.
func (e *ExportMetrics) IncFailure(format, renderer string) {
	if e == nil || e.failure == nil {
		return
	}
	e.failure.WithLabelValues(normalizeLabel(format), normalizeLabel(renderer)).Inc()
}
