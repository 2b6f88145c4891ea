package handlers

import (
	"net/http"

	"dupescan/internal/metrics"
)

// Scan runs a scan of the directory given by the "path" query parameter and
// returns the resulting records. "recursive=true" descends the full
// subtree. The scan itself never fails; a partially readable tree just
// yields a partial result set.
func (h *Handlers) Scan(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("path")
	if root == "" {
		writeError(w, http.StatusBadRequest, "missing required query parameter: path")
		return
	}
	recursive := r.URL.Query().Get("recursive") == "true"

	records := h.scanner.Scan(root, recursive, func(current, total int) {
		h.progress.Store(ScanProgress{
			Current:  current,
			Total:    total,
			Scanning: current < total,
		})
		metrics.ScanProgressCurrent.Set(float64(current))
		metrics.ScanProgressTotal.Set(float64(total))
	})

	writeJSON(w, http.StatusOK, records)
}

// Progress returns the progress snapshot of the current or most recent scan.
func (h *Handlers) Progress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.getProgress())
}
