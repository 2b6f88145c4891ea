package scan

import (
	"os"

	"dupescan/internal/logging"
	"dupescan/internal/metrics"
)

// DeleteResult reports the outcome of one deletion attempt.
type DeleteResult struct {
	Path    string `json:"path"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// Delete removes the given files from disk and evicts their cache rows.
// Each path is attempted independently: a failure is recorded in that
// path's result and never aborts the rest of the batch.
func (s *Scanner) Delete(paths []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(paths))

	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			metrics.DeletionsTotal.WithLabelValues("failed").Inc()
			results = append(results, DeleteResult{Path: path, Error: err.Error()})
			continue
		}

		// Evict the cache row so the file doesn't resurface on the next
		// scan; the file itself is already gone, so an eviction failure
		// only delays cleanup until the next prune.
		if err := s.store.Delete(path); err != nil {
			logging.Error("Cache eviction failed for deleted file %s: %v", path, err)
		}

		metrics.DeletionsTotal.WithLabelValues("deleted").Inc()
		results = append(results, DeleteResult{Path: path, Deleted: true})
	}

	return results
}
