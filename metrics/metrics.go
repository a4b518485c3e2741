package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fiesta_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// RegistrationsCreated counts successful program registrations
	RegistrationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fiesta_registrations_created_total",
			Help: "Total number of program registrations created",
		},
	)

	// RegistrationsRejected counts failed registration attempts by reason
	RegistrationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_registrations_rejected_total",
			Help: "Total number of rejected registration attempts",
		},
		[]string{"reason"},
	)

	// ReplacementDecisions counts replacement request decisions by outcome
	ReplacementDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_replacement_decisions_total",
			Help: "Total number of replacement request decisions",
		},
		[]string{"outcome"},
	)

	// ResultDecisions counts result approvals and rejections
	ResultDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_result_decisions_total",
			Help: "Total number of result decisions",
		},
		[]string{"outcome"},
	)

	// RealtimeClients tracks connected websocket clients per channel
	RealtimeClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_realtime_clients",
			Help: "Number of connected websocket clients",
		},
		[]string{"channel"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fiesta_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fiesta_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemDiskUsage tracks disk usage
	SystemDiskUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_system_disk_usage_bytes",
			Help: "Disk usage statistics in bytes",
		},
		[]string{"mountpoint", "type"}, // type can be "used", "free", "total"
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fiesta_system_load_average",
			Help: "System load average",
		},
		[]string{"period"}, // "1min", "5min", "15min"
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
