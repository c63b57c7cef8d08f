package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestAssistantMetricsExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAssistantMetrics(reg)
	model := "gemini-3-flash-preview"
	m.ObserveDuration(model, 800*time.Millisecond)
	m.IncSuccess(model)
	m.IncFailure(model)
	m.IncParseFallback(model)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	for _, name := range []string{"assistant_call_success", "assistant_call_failure", "assistant_parse_fallback"} {
		got, err := fetchCounterValue(mfs, name, "model", model)
		if err != nil {
			t.Fatalf("fetch %s: %v", name, err)
		}
		if got != 1 {
			t.Fatalf("expected %s=1, got %f", name, got)
		}
	}

	if got, err := fetchHistogramSum(mfs, "assistant_call_duration_seconds", "model", model); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestAssistantMetricsNilSafe(t *testing.T) {
	var m *AssistantMetrics
	m.ObserveDuration("x", time.Second)
	m.IncSuccess("x")

	unregistered := NewAssistantMetrics(nil)
	unregistered.IncFailure("x")
	unregistered.IncParseFallback("")
}

func TestExportMetricsExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewExportMetrics(reg)
	m.ObserveDuration("pdf", "chromium", 2*time.Second)
	m.IncSuccess("pdf", "chromium")
	m.IncFailure("png", "chromium")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "export_success", "format", "pdf"); err != nil {
		t.Fatalf("fetch success: %v", err)
	} else if got != 1 {
		t.Fatalf("expected success=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "export_failure", "format", "png"); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
