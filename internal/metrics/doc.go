// Package metrics defines the Prometheus collectors exported by the
// duplicate scanner: HTTP request metrics, scan and cache counters, cache
// store operation histograms, and deletion outcomes.
//
// All collectors are registered with the default registry using promauto.
// To expose them, mount promhttp.Handler() on an HTTP mux:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
package metrics
