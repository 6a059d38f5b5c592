package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// ToolAnonymizer labels metrics recorded by the anonymizer driver.
	ToolAnonymizer = "jsonanon"
	// ToolConverter labels metrics recorded by the converter driver.
	ToolConverter = "json2xlsx"

	resultSuccess = "success"
	resultFailure = "failure"
)

// Metrics collects batch counters on a private registry. A nil *Metrics
// records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	files      *prometheus.CounterVec
	rows       prometheus.Counter
	anonymized prometheus.Counter
	collisions prometheus.Counter
}

// NewMetrics creates and registers the batch counters.
func NewMetrics() *Metrics {
	files := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jsonxl_files_total",
		Help: "Input files processed, by tool and result.",
	}, []string{"tool", "result"})
	rows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsonxl_rows_total",
		Help: "Rows written to spreadsheets.",
	})
	anonymized := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsonxl_anonymized_ids_total",
		Help: "Sensitive values replaced by anonymized identifiers.",
	})
	collisions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsonxl_anonymize_collisions_total",
		Help: "Distinct originals that mapped to an already issued identifier.",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(files, rows, anonymized, collisions)

	return &Metrics{
		registry:   registry,
		files:      files,
		rows:       rows,
		anonymized: anonymized,
		collisions: collisions,
	}
}

// Registry returns the registry holding the batch counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all counters to path in the text exposition format
// read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) fileDone(tool string, err error) {
	if m == nil {
		return
	}

	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	m.files.WithLabelValues(tool, result).Inc()
}

func (m *Metrics) addRows(n int) {
	if m == nil {
		return
	}
	m.rows.Add(float64(n))
}

func (m *Metrics) addAnonymized(ids, collisions int) {
	if m == nil {
		return
	}
	m.anonymized.Add(float64(ids))
	m.collisions.Add(float64(collisions))
}
