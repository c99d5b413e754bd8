package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for AnalysesTotal.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// RequestsTotal counts HTTP requests by route template and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sugar_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MeasurementsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugar_measurements_recorded_total",
			Help: "Measurements stored, by mode",
		},
		[]string{"mode"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugar_analyses_total",
			Help: "Analysis queries by period, mode filter and outcome",
		},
		[]string{"period", "filter", "outcome"},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sugar_histogram_render_seconds",
			Help:    "Time spent rendering histogram images",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// CacheLookups counts histogram cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugar_histogram_cache_lookups_total",
			Help: "Histogram cache lookups by result",
		},
		[]string{"result"},
	)
)
