package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// PunchesTotal counts recorded punches by action (clock_in, clock_out)
	// and outcome (ok, transient_error, unexpected_error, unrecognized).
	PunchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_punches_total",
			Help: "Total number of attendance punch attempts by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	// OpenPunches is the number of punches currently without a check-out,
	// updated by the open-punch summary job.
	OpenPunches = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "attendance_open_punches",
			Help: "Number of attendance records without a check-out time",
		},
	)
)

var initOnce sync.Once

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, PunchesTotal, OpenPunches)
	})
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordPunch counts one punch attempt.
func RecordPunch(action, outcome string) {
	PunchesTotal.WithLabelValues(action, outcome).Inc()
}

// SetOpenPunches updates the open punch gauge.
func SetOpenPunches(n int) {
	OpenPunches.Set(float64(n))
}
