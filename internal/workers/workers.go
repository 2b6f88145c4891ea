package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns the number of scan workers to use.
//
// It respects container CPU limits via GOMAXPROCS (Go 1.19+) and can be
// overridden with the SCAN_WORKERS environment variable. The limit parameter
// caps the worker count; use 0 for no cap.
func Count(limit int) int {
	if override := os.Getenv("SCAN_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	// GOMAXPROCS is automatically set to the container CPU limit in Go 1.19+.
	workers := runtime.GOMAXPROCS(0)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}

	return workers
}
