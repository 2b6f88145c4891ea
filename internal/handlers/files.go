package handlers

import (
	"net/http"

	"dupescan/internal/scan"
)

// Delete removes the posted files from disk and evicts their cache rows.
// Each path gets its own outcome; the batch never aborts early.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paths []string `json:"paths"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.scanner.Delete(req.Paths))
}

// Open delegates the posted path to the operating system's default file
// viewer.
func (h *Handlers) Open(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "missing required field: path")
		return
	}

	if err := scan.OpenInViewer(req.Path); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to open file: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"opened": true})
}
