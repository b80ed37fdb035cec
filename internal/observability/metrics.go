package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the election data service.
type Metrics struct {
	// Queries counts query-surface lookups by entity and outcome.
	// entity: election|county|region|prediction|summary, outcome: ok|not_found.
	Queries *prometheus.CounterVec

	DatasetLoadSeconds prometheus.Gauge
	DatasetLoadedAt    prometheus.Gauge
	DatasetCounties    prometheus.Gauge
	DatasetElections   prometheus.Gauge
	DatasetRegions     prometheus.Gauge

	// Kafka export metrics.
	ExportedPredictions prometheus.Counter
	ExportErrors        prometheus.Counter
	ExportEnabled       prometheus.Gauge
}

// NewMetrics creates and registers all collectors with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Queries,
		m.DatasetLoadSeconds,
		m.DatasetLoadedAt,
		m.DatasetCounties,
		m.DatasetElections,
		m.DatasetRegions,
		m.ExportedPredictions,
		m.ExportErrors,
		m.ExportEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering, so parallel tests
// avoid "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "election_data",
			Name:      "queries_total",
			Help:      "Query-surface lookups by entity and outcome.",
		}, []string{"entity", "outcome"}),
		DatasetLoadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "dataset_load_seconds",
			Help:      "Duration of the startup dataset load.",
		}),
		DatasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "dataset_loaded_at_seconds",
			Help:      "Unix time the dataset finished loading.",
		}),
		DatasetCounties: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "dataset_counties",
			Help:      "Number of counties in the loaded dataset.",
		}),
		DatasetElections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "dataset_elections",
			Help:      "Number of national elections in the loaded dataset.",
		}),
		DatasetRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "dataset_regions",
			Help:      "Number of regions in the loaded dataset.",
		}),
		ExportedPredictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_data",
			Name:      "exported_predictions_total",
			Help:      "County predictions published to the export topic.",
		}),
		ExportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_data",
			Name:      "export_errors_total",
			Help:      "Failed export batches.",
		}),
		ExportEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "election_data",
			Name:      "export_enabled",
			Help:      "1 when Kafka export is enabled, 0 otherwise.",
		}),
	}
}

// ObserveLoad records dataset-load telemetry in one place.
func (m *Metrics) ObserveLoad(d time.Duration, counties, elections, regions int) {
	m.DatasetLoadSeconds.Set(d.Seconds())
	m.DatasetLoadedAt.SetToCurrentTime()
	m.DatasetCounties.Set(float64(counties))
	m.DatasetElections.Set(float64(elections))
	m.DatasetRegions.Set(float64(regions))
}
