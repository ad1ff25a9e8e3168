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
			Name: "festival_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "festival_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "festival_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// StorageOperationDuration measures storage operation duration per backend
	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "festival_storage_operation_duration_seconds",
			Help:    "Storage operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation", "collection"},
	)

	// RemoteWriteFailures counts remote writes that failed after the local
	// write already succeeded, leaving the two stores diverged
	RemoteWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_remote_write_failures_total",
			Help: "Total number of best-effort remote writes that failed",
		},
		[]string{"collection"},
	)

	// SyncedRecords counts records pushed remotely by the reconciliation sync
	SyncedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_synced_records_total",
			Help: "Total number of records pushed to the remote store by sync",
		},
		[]string{"collection", "action"},
	)

	// ConnectivityState reports the reconciliation layer state (1 online, 0 offline)
	ConnectivityState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "festival_connectivity_online",
			Help: "Whether the reconciliation layer currently routes to the remote store",
		},
	)

	// DerivationRuns counts full student record recomputations
	DerivationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "festival_derivation_runs_total",
			Help: "Total number of student record recomputations",
		},
	)

	// CacheHits counts the number of local cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "festival_cache_hits_total",
			Help: "Total number of local cache hits",
		},
	)

	// CacheMisses counts the number of local cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "festival_cache_misses_total",
			Help: "Total number of local cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "festival_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "festival_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordStorageOperation records the duration of a storage operation
func RecordStorageOperation(backend, operation, collection string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	StorageOperationDuration.WithLabelValues(backend, operation, collection).Observe(duration)
}
