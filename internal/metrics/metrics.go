package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dupescan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dupescan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dupescan_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Scan metrics
var (
	ScansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_scans_total",
			Help: "Total number of scan operations",
		},
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dupescan_scan_duration_seconds",
			Help:    "Duration of full scan operations in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	ScanFilesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_scan_files_processed_total",
			Help: "Total number of candidate files processed by scans",
		},
	)

	ScanWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dupescan_scan_workers",
			Help: "Number of parallel workers used by the most recent scan",
		},
	)

	ScanProgressCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dupescan_scan_progress_current",
			Help: "Completed files in the scan currently in progress",
		},
	)

	ScanProgressTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dupescan_scan_progress_total",
			Help: "Total candidate files in the scan currently in progress",
		},
	)
)

// Processing metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_cache_hits_total",
			Help: "Number of files served from the fingerprint cache without reprocessing",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_cache_misses_total",
			Help: "Number of files whose fingerprints had to be recomputed",
		},
	)

	HashFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_hash_failures_total",
			Help: "Number of files whose perceptual hash could not be computed (corrupt or unsupported image)",
		},
	)

	FilesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_files_skipped_total",
			Help: "Number of candidate files omitted from scan results due to unrecoverable errors",
		},
	)
)

// Cache store metrics
var (
	StoreQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dupescan_store_queries_total",
			Help: "Total number of cache store operations",
		},
		[]string{"operation", "status"},
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dupescan_store_query_duration_seconds",
			Help:    "Cache store operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	StoreRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dupescan_store_rows",
			Help: "Number of rows currently in the fingerprint cache",
		},
	)

	StoreRowsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dupescan_store_rows_pruned_total",
			Help: "Total number of stale cache rows removed by post-scan pruning",
		},
	)
)

// Deletion metrics
var (
	DeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dupescan_deletions_total",
			Help: "Total number of file deletion attempts by outcome",
		},
		[]string{"outcome"}, // "deleted", "failed"
	)
)
