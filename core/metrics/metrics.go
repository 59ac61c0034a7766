// Package metrics exposes Prometheus counters for export runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the export metrics.
type Metrics struct {
	// Runs counts finished export runs by outcome (ok, partial, failed).
	Runs *prometheus.CounterVec
	// Items counts classified items by status (export, skip, not_found).
	Items *prometheus.CounterVec
	// Exported counts images written.
	Exported prometheus.Counter
	// Failures counts images that could not be exported.
	Failures prometheus.Counter
	// RunDuration observes the wall time of a run.
	RunDuration prometheus.Histogram
	// Records is the size of the record set after the last run.
	Records prometheus.Gauge
	// LastRun is the unix time of the last finished run.
	LastRun prometheus.Gauge
}

// New registers the metrics with reg. Pass prometheus.DefaultRegisterer to
// serve them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loadscreen_export_runs_total",
			Help: "Export runs by outcome",
		}, []string{"outcome"}),
		Items: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loadscreen_export_items_total",
			Help: "Classified loading screen items by status",
		}, []string{"status"}),
		Exported: f.NewCounter(prometheus.CounterOpts{
			Name: "loadscreen_export_images_total",
			Help: "Images written",
		}),
		Failures: f.NewCounter(prometheus.CounterOpts{
			Name: "loadscreen_export_failures_total",
			Help: "Images that could not be exported",
		}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadscreen_export_run_duration_seconds",
			Help:    "Duration of export runs",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		Records: f.NewGauge(prometheus.GaugeOpts{
			Name: "loadscreen_export_records",
			Help: "Records in the export database",
		}),
		LastRun: f.NewGauge(prometheus.GaugeOpts{
			Name: "loadscreen_export_last_run_timestamp_seconds",
			Help: "Unix time of the last finished run",
		}),
	}
}

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

// ObserveRun records a finished run. m may be nil.
func (m *Metrics) ObserveRun(outcome string, started time.Time, records int) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(time.Since(started).Seconds())
	m.Records.Set(float64(records))
	m.LastRun.SetToCurrentTime()
}

// ObserveItems adds classification counts. m may be nil.
func (m *Metrics) ObserveItems(export, skip, notFound int) {
	if m == nil {
		return
	}
	m.Items.WithLabelValues("export").Add(float64(export))
	m.Items.WithLabelValues("skip").Add(float64(skip))
	m.Items.WithLabelValues("not_found").Add(float64(notFound))
}

// ObserveImage counts one export attempt. m may be nil.
func (m *Metrics) ObserveImage(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Failures.Inc()
		return
	}
	m.Exported.Inc()
}
