// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics defines the Prometheus collectors for parse and import runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Import operations used as the "operation" label.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Metrics groups the collectors registered for one process.
type Metrics struct {
	EntriesParsed       prometheus.Counter
	EntriesWithWarnings prometheus.Counter
	BlockErrors         prometheus.Counter
	ParseDuration       prometheus.Histogram

	// ImportRecords counts stored records by operation.
	ImportRecords *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a fresh registry per test
// keeps counts isolated.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EntriesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "whatmanga_entries_parsed_total",
			Help: "Total number of entries produced by the list parser",
		}),
		EntriesWithWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "whatmanga_entries_with_warnings_total",
			Help: "Total number of parsed entries carrying at least one warning",
		}),
		BlockErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "whatmanga_block_errors_total",
			Help: "Total number of blocks that failed to assemble",
		}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "whatmanga_parse_duration_seconds",
			Help:    "Duration of a full list parse in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ImportRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whatmanga_import_records_total",
				Help: "Total number of imported records by operation",
			},
			[]string{"operation"},
		),
	}
}

// RecordParse adds the outcome of one parse.
func (m *Metrics) RecordParse(success, warnings, errors int, elapsed time.Duration) {
	m.EntriesParsed.Add(float64(success))
	m.EntriesWithWarnings.Add(float64(warnings))
	m.BlockErrors.Add(float64(errors))
	m.ParseDuration.Observe(elapsed.Seconds())
}

// RecordImport adds count records stored with operation.
func (m *Metrics) RecordImport(operation string, count int) {
	if count <= 0 {
		return
	}
	m.ImportRecords.WithLabelValues(operation).Add(float64(count))
}

// WriteTextfile dumps every metric gathered by g to filename in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(filename string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(filename, g)
}
