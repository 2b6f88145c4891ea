package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"dupescan/internal/logging"
	"dupescan/internal/scan"
	"dupescan/internal/store"
)

// Handlers exposes the scanner's operations over HTTP. It is a thin
// dispatch layer: all semantics live in the scan, duplicate, and store
// packages.
type Handlers struct {
	store     *store.Store
	scanner   *scan.Scanner
	threshold int
	startTime time.Time

	// Snapshot of the most recent scan's progress, for polling.
	progress atomic.Value // ScanProgress
}

// ScanProgress is the pollable progress snapshot of the current or most
// recent scan.
type ScanProgress struct {
	Current  int  `json:"current"`
	Total    int  `json:"total"`
	Scanning bool `json:"scanning"`
}

// New creates the handler set.
func New(st *store.Store, scanner *scan.Scanner, threshold int) *Handlers {
	h := &Handlers{
		store:     st,
		scanner:   scanner,
		threshold: threshold,
		startTime: time.Now(),
	}
	h.progress.Store(ScanProgress{})
	return h
}

func (h *Handlers) getProgress() ScanProgress {
	if p, ok := h.progress.Load().(ScanProgress); ok {
		return p
	}
	return ScanProgress{}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeBody decodes a JSON request body into v, rejecting unknown noise
// with a client error rather than a panic downstream.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
