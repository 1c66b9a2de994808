// Package metrics exposes Prometheus instruments for imports and the admin API
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// importRuns counts completed runs by entity and outcome (ok, no_records, parse_error)
	importRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_runs_total",
		Help: "Total number of import runs by entity and outcome",
	}, []string{"entity", "outcome"})

	// importRecords counts persisted records by entity and result (success, duplicate, failed)
	importRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_records_total",
		Help: "Total number of records persisted by entity and result",
	}, []string{"entity", "result"})

	// importDuration tracks the wall time of a persist loop.
	importDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "import_run_duration_seconds",
		Help:    "Time taken to persist one import run by entity",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"entity"})

	// droppedRecords counts source rows dropped during normalization.
	droppedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_dropped_rows_total",
		Help: "Total number of source rows dropped for a missing name or title",
	}, []string{"entity"})

	// importsInFlight is 1 while an import of the entity is running.
	importsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "import_in_flight",
		Help: "Whether an import of the entity is currently running",
	}, []string{"entity"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Record result labels
const (
	ResultSuccess   = "success"
	ResultDuplicate = "duplicate"
	ResultFailed    = "failed"
)

// Run outcome labels
const (
	OutcomeOK         = "ok"
	OutcomeNoRecords  = "no_records"
	OutcomeParseError = "parse_error"
)

// Recorder records import metrics for one entity kind
type Recorder struct {
	entity string
}

// NewRecorder creates a recorder labelled with entity
func NewRecorder(entity string) *Recorder {
	return &Recorder{entity: entity}
}

// RecordRecord counts one persisted record
func (r *Recorder) RecordRecord(result string) {
	importRecords.WithLabelValues(r.entity, result).Inc()
}

// RecordRun counts a finished run and, for runs that persisted, its duration
func (r *Recorder) RecordRun(outcome string, duration time.Duration) {
	importRuns.WithLabelValues(r.entity, outcome).Inc()
	if outcome == OutcomeOK {
		importDuration.WithLabelValues(r.entity).Observe(duration.Seconds())
	}
}

// RecordDropped counts rows dropped by the normalizer
func (r *Recorder) RecordDropped(n int) {
	if n > 0 {
		droppedRecords.WithLabelValues(r.entity).Add(float64(n))
	}
}

// Start marks the entity busy; the returned func clears it
func (r *Recorder) Start() func() {
	importsInFlight.WithLabelValues(r.entity).Set(1)
	return func() { importsInFlight.WithLabelValues(r.entity).Set(0) }
}

// ObserveHTTP records one served request
func ObserveHTTP(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}
