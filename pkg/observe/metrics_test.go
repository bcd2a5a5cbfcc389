package observe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.CountFallback("week_predictions", "not_found")
	m.CountFallback("week_predictions", "not_found")
	m.CountPrediction("high")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("week_predictions", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Predictions.WithLabelValues("high")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.CountFallback("model_metrics", "malformed")
		m.CountPrediction("low")
	})
}

func TestNewMetrics_FreshRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.CountPrediction("low")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.Predictions.WithLabelValues("low")))
}
