package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransactionQuery   = "transaction_query"
	MetricTransactionReport  = "transaction_report"
	MetricQueryPageSize      = "transaction_query_page_size"
	MetricCandidateCacheHits = "candidate_cache"
	MetricBreakerState       = "transaction_store_breaker_state"
	MetricBreakerRejections  = "transaction_store_breaker_rejections"
)

type PrometheusMetrics struct {
	queriesTotal   *prometheus.CounterVec
	queryDuration  prometheus.Histogram
	reportsTotal   *prometheus.CounterVec
	reportDuration prometheus.Histogram
	queryPageSize  prometheus.Histogram
	cacheLookups   *prometheus.CounterVec
	breakerState   prometheus.Gauge
	breakerRejects prometheus.Counter
}

// NewPrometheusMetrics registers the transaction metrics with the default registry.
// It must only be called once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(prometheus.DefaultRegisterer))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of transaction queries",
			},
			[]string{"status"},
		),
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_milliseconds",
				Help:    "Transaction query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_reports_total",
				Help: "Total number of transaction reports generated",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_report_duration_milliseconds",
				Help:    "Transaction report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		queryPageSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_page_size",
				Help:    "Requested page size of transaction queries",
				Buckets: []float64{1, 5, 10, 20, 50, 100, 500},
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_candidate_cache_lookups_total",
				Help: "Candidate cache lookups by result",
			},
			[]string{"result"},
		),
		breakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_store_breaker_state",
				Help: "Transaction store circuit breaker state (0 closed, 1 open, 2 half-open)",
			},
		),
		breakerRejects: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_store_breaker_rejections_total",
				Help: "Candidate loads rejected by the open circuit breaker",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricTransactionQuery:
		if status != "" {
			m.queriesTotal.WithLabelValues(status).Inc()
		}
	case MetricTransactionReport:
		if status != "" {
			m.reportsTotal.WithLabelValues(status).Inc()
		}
	case MetricCandidateCacheHits:
		if result := tags["result"]; result != "" {
			m.cacheLookups.WithLabelValues(result).Inc()
		}
	case MetricBreakerRejections:
		m.breakerRejects.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTransactionQuery:
		m.queryDuration.Observe(float64(duration.Milliseconds()))
	case MetricTransactionReport:
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricQueryPageSize:
		m.queryPageSize.Observe(value)
	case MetricBreakerState:
		m.breakerState.Set(value)
	}
}

// statusTag builds the tag set for a success/failure counter
func statusTag(err error) map[string]string {
	if err != nil {
		return map[string]string{"status": "failed"}
	}
	return map[string]string{"status": "success"}
}
