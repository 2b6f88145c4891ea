package handlers

import (
	"net/http"
	"runtime"
	"time"

	"dupescan/internal/logging"
	"dupescan/internal/startup"
)

// HealthResponse contains the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	Scanning    bool  `json:"scanning"`
	CacheRows   int64 `json:"cacheRows"`
	CacheHits   int64 `json:"cacheHits"`
	CacheMisses int64 `json:"cacheMisses"`

	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	rows, err := h.store.Count()
	if err != nil {
		logging.Warn("Health check: cache row count failed: %v", err)
	}

	proc := h.scanner.Processor()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      startup.Version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Scanning:     h.getProgress().Scanning,
		CacheRows:    rows,
		CacheHits:    proc.CacheHits(),
		CacheMisses:  proc.CacheMisses(),
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	})
}
