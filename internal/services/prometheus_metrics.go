package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated     *prometheus.CounterVec
	ingestedTransactions prometheus.Counter
	ingestRejected       prometheus.Counter
	budgetOverrides      prometheus.Gauge
	ingestBatchSize      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spending_reports_generated_total",
				Help: "Total number of spending reports generated",
			},
			[]string{"report_type"},
		),
		ingestedTransactions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_ingested_total",
				Help: "Total number of transactions ingested",
			},
		),
		ingestRejected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_ingest_rejected_total",
				Help: "Total number of rejected ingest batches",
			},
		),
		budgetOverrides: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "category_budget_overrides",
				Help: "Current number of stored category budget overrides",
			},
		),
		ingestBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_ingest_batch_size",
				Help:    "Distribution of ingest batch sizes",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordReportGenerated(reportType string) {
	m.reportsGenerated.WithLabelValues(reportType).Inc()
}

func (m *PrometheusMetrics) RecordIngestedTransactions(count int) {
	m.ingestedTransactions.Add(float64(count))
	m.ingestBatchSize.Observe(float64(count))
}

func (m *PrometheusMetrics) RecordIngestRejected() {
	m.ingestRejected.Inc()
}

func (m *PrometheusMetrics) SetBudgetOverrides(count float64) {
	m.budgetOverrides.Set(count)
}
