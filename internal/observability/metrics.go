package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for a conversion run.
// They live on a private registry so repeated runs in one process (and
// tests) never trip duplicate registration.
type Metrics struct {
	registry *prometheus.Registry

	RecordsWalked    prometheus.Counter
	RecordsSkipped   *prometheus.CounterVec // labels: reason={no_timestamp,out_of_range}
	ChildrenSkipped  prometheus.Counter
	LocationsIndexed prometheus.Counter
	MessagesParsed   prometheus.Counter
	EventsParsed     prometheus.Counter

	RowsWritten        *prometheus.CounterVec // labels: output={coordinates,signalling,events}
	ConversionDuration prometheus.Histogram
}

// NewMetrics creates and registers all conversion metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RecordsWalked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "records_walked_total",
			Help:      "Total raw records visited in the data array.",
		}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "records_skipped_total",
			Help:      "Records skipped during the walk, by reason.",
		}, []string{"reason"}),
		ChildrenSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "children_skipped_total",
			Help:      "Messages or events dropped for an unparseable timestamp.",
		}),
		LocationsIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "locations_indexed_total",
			Help:      "GPS fixes stored in the per-second index.",
		}),
		MessagesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "messages_parsed_total",
			Help:      "Layer-3 signalling messages parsed.",
		}),
		EventsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "events_parsed_total",
			Help:      "Modem events parsed.",
		}),
		RowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nsg2csv",
			Name:      "rows_written_total",
			Help:      "CSV data rows written, by output file.",
		}, []string{"output"}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nsg2csv",
			Name:      "conversion_duration_seconds",
			Help:      "Duration of a complete load-index-walk-write run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	m.registry.MustRegister(
		m.RecordsWalked,
		m.RecordsSkipped,
		m.ChildrenSkipped,
		m.LocationsIndexed,
		m.MessagesParsed,
		m.EventsParsed,
		m.RowsWritten,
		m.ConversionDuration,
	)

	return m
}

// WriteTextfile dumps the registry in the node_exporter textfile
// collector format, for scraping one-shot runs from cron.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
