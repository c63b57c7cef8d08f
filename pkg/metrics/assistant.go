package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AssistantMetrics records outcomes of generative model calls.
type AssistantMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	fallback *prometheus.CounterVec
}

// NewAssistantMetrics registers the assistant metrics on the provided registerer.
func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	if reg == nil {
		return &AssistantMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_call_duration_seconds",
		Help:    "Duration of generative model calls in seconds.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"model"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_call_success",
		Help: "Model calls that produced a usable response.",
	}, []string{"model"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_call_failure",
		Help: "Model calls that failed at the transport or auth level.",
	}, []string{"model"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_parse_fallback",
		Help: "Model responses that fell back to a plain chat message.",
	}, []string{"model"})
	reg.MustRegister(duration, success, failure, fallback)
	return &AssistantMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		fallback: fallback,
	}
}

// ObserveDuration records the duration of a call to the named model.
func (a *AssistantMetrics) ObserveDuration(model string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(model)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named model.
func (a *AssistantMetrics) IncSuccess(model string) {
	if a == nil || a.success == nil {
		return
	}
	a.success.WithLabelValues(normalizeLabel(model)).Inc()
}

// IncFailure increments the failure counter for the named model.
func (a *AssistantMetrics) IncFailure(model string) {
	if a == nil || a.failure == nil {
		return
	}
	a.failure.WithLabelValues(normalizeLabel(model)).Inc()
}

// IncParseFallback counts responses that degraded to a conversational reply.
func (a *AssistantMetrics) IncParseFallback(model string) {
	if a == nil || a.fallback == nil {
		return
	}
	a.fallback.WithLabelValues(normalizeLabel(model)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
