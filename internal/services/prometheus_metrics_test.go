package services

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newPrometheusMetrics(promauto.With(registry))

	metrics.IncrementCounter(MetricTransactionQuery, statusTag(nil))
	metrics.IncrementCounter(MetricTransactionQuery, statusTag(nil))
	metrics.IncrementCounter(MetricTransactionQuery, statusTag(errors.New("boom")))
	metrics.IncrementCounter(MetricTransactionReport, statusTag(nil))
	metrics.IncrementCounter(MetricCandidateCacheHits, map[string]string{"result": "hit"})
	metrics.IncrementCounter(MetricTransactionQuery, nil)
	metrics.IncrementCounter("unknown", statusTag(nil))
	metrics.IncrementCounter(MetricBreakerRejections, nil)

	assert.Equal(t, 2.0, counterValue(t, metrics.queriesTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, counterValue(t, metrics.queriesTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, counterValue(t, metrics.reportsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, counterValue(t, metrics.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, counterValue(t, metrics.breakerRejects))

	metrics.RecordGauge(MetricBreakerState, float64(StateOpen), nil)
	var gauge dto.Metric
	require.NoError(t, metrics.breakerState.Write(&gauge))
	assert.Equal(t, 1.0, gauge.GetGauge().GetValue())

	metrics.RecordProcessingTime(MetricTransactionQuery, 12*time.Millisecond)
	metrics.RecordProcessingTime(MetricTransactionReport, 250*time.Millisecond)
	metrics.RecordGauge(MetricQueryPageSize, 5, nil)
	metrics.RecordGauge("unknown", 5, nil)

	families, err := registry.Gather()
	require.NoError(t, err)

	samples := make(map[string]uint64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if h := metric.GetHistogram(); h != nil {
				samples[family.GetName()] = h.GetSampleCount()
			}
		}
	}

	assert.Equal(t, uint64(1), samples["transaction_query_duration_milliseconds"])
	assert.Equal(t, uint64(1), samples["transaction_report_duration_milliseconds"])
	assert.Equal(t, uint64(1), samples["transaction_query_page_size"])
}

func TestStatusTag(t *testing.T) {
	assert.Equal(t, map[string]string{"status": "success"}, statusTag(nil))
	assert.Equal(t, map[string]string{"status": "failed"}, statusTag(errors.New("x")))
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	return metric.GetCounter().GetValue()
}
