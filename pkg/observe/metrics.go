package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "fire_risk"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route
	Predictions         *prometheus.CounterVec   // labels: risk_level
	ArtifactFallbacks   *prometheus.CounterVec   // labels: artifact, reason
}

// NewMetrics creates all collectors and registers them, together with the Go
// and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Point predictions served by risk level.",
		}, []string{"risk_level"}),
		ArtifactFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_fallbacks_total",
			Help:      "Times an artifact was replaced by built-in or synthetic data.",
		}, []string{"artifact", "reason"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.Predictions,
		m.ArtifactFallbacks,
	)

	return m
}

// CountFallback records that artifact was replaced by built-in data. A nil
// Metrics is a no-op.
func (m *Metrics) CountFallback(artifact, reason string) {
	if m == nil {
		return
	}
	m.ArtifactFallbacks.WithLabelValues(artifact, reason).Inc()
}

func (m *Metrics) CountPrediction(riskLevel string) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(riskLevel).Inc()
}
