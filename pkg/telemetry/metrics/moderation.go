package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"warden-hq/warden/pkg/config"
)

// ModerationMetrics tracks metrics for moderation decisions.
//
// Metrics:
//   - warden_moderation_requests_total: API requests by endpoint and status
//   - warden_moderation_decisions_total: verdicts by flagged outcome
//   - warden_moderation_flags_total: category hits per flagged category
//   - warden_moderation_severity_total: verdicts by overall severity
//   - warden_moderation_analysis_duration_seconds: engine analysis latency
//   - warden_moderation_batch_size: batch request size distribution
type ModerationMetrics struct {
	requestsTotal    *prometheus.CounterVec
	decisionsTotal   *prometheus.CounterVec
	flagsTotal       *prometheus.CounterVec
	severityTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	batchSize        prometheus.Histogram
}

// NewModerationMetrics creates and registers the moderation metric group.
func NewModerationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ModerationMetrics {
	m := &ModerationMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of API requests processed",
			},
			[]string{"endpoint", "status"},
		),

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "decisions_total",
				Help:      "Total number of moderation verdicts by outcome",
			},
			[]string{"flagged"},
		),

		flagsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "flags_total",
				Help:      "Total number of category hits across flagged content",
			},
			[]string{"category"},
		),

		severityTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "severity_total",
				Help:      "Total number of verdicts by overall severity",
			},
			[]string{"severity"},
		),

		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of engine analysis in seconds",
				// Pattern matching is sub-millisecond in the common case.
				Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
			},
		),

		batchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "batch_size",
				Help:      "Number of items per batch request",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.decisionsTotal,
		m.flagsTotal,
		m.severityTotal,
		m.analysisDuration,
		m.batchSize,
	)

	return m
}

// RecordRequest records one API request with its response status.
func (m *ModerationMetrics) RecordRequest(endpoint, status string) {
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordDecision records one moderation verdict.
func (m *ModerationMetrics) RecordDecision(flagged bool, reasons []string, severity string, seconds float64) {
	outcome := "false"
	if flagged {
		outcome = "true"
	}
	m.decisionsTotal.WithLabelValues(outcome).Inc()
	m.severityTotal.WithLabelValues(severity).Inc()
	for _, reason := range reasons {
		m.flagsTotal.WithLabelValues(reason).Inc()
	}
	m.analysisDuration.Observe(seconds)
}

// RecordBatch records the size of one batch request.
func (m *ModerationMetrics) RecordBatch(size int) {
	m.batchSize.Observe(float64(size))
}
