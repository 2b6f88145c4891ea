package handlers

import (
	"net/http"

	"dupescan/internal/duplicate"
	"dupescan/internal/store"
)

// ExactDuplicates groups the posted records by content-hash equality.
func (h *Handlers) ExactDuplicates(w http.ResponseWriter, r *http.Request) {
	var records []store.ImageRecord
	if !decodeBody(w, r, &records) {
		return
	}
	writeJSON(w, http.StatusOK, duplicate.ExactGroups(records))
}

// SimilarDuplicates groups the posted records by perceptual-hash proximity
// under the configured distance threshold.
func (h *Handlers) SimilarDuplicates(w http.ResponseWriter, r *http.Request) {
	var records []store.ImageRecord
	if !decodeBody(w, r, &records) {
		return
	}
	writeJSON(w, http.StatusOK, duplicate.SimilarGroups(records, h.threshold))
}
