package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report service.
type Metrics struct {
	RecordsLoaded    prometheus.Counter
	RowsSkipped      prometheus.Counter
	ReportBuilds     prometheus.Counter
	ReportsPublished prometheus.Counter
	DatasetRecords   prometheus.Gauge

	ReportBuildDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "records_loaded_total",
			Help:      "Total storm records loaded from the dataset.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "rows_skipped_total",
			Help:      "Total dataset rows rejected during loading.",
		}),
		ReportBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "report_builds_total",
			Help:      "Total harm reports built.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "reports_published_total",
			Help:      "Total ranked lists published to the sink topic.",
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_report",
			Name:      "dataset_records",
			Help:      "Number of records in the currently loaded dataset.",
		}),
		ReportBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "report_build_duration_seconds",
			Help:      "Duration of a complete load-normalize-aggregate-rank cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RowsSkipped,
		m.ReportBuilds,
		m.ReportsPublished,
		m.DatasetRecords,
		m.ReportBuildDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "records_loaded_total"}),
		RowsSkipped:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "rows_skipped_total"}),
		ReportBuilds:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "report_builds_total"}),
		ReportsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "reports_published_total"}),
		DatasetRecords:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "storm_report", Name: "dataset_records"}),
		ReportBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_report", Name: "report_build_duration_seconds"}),
	}
}
