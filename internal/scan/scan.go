package scan

import (
	"sync"
	"sync/atomic"
	"time"

	"dupescan/internal/logging"
	"dupescan/internal/metrics"
	"dupescan/internal/processor"
	"dupescan/internal/store"
)

// progressInterval is how many completions pass between progress
// notifications. The last file always notifies regardless, so small scans
// still show activity without flooding observers on large ones.
const progressInterval = 10

// ProgressFunc receives throttled (current, total) progress notifications
// during a scan. It is called from worker goroutines and must be safe for
// concurrent use.
type ProgressFunc func(current, total int)

// Scanner orchestrates parallel scans: it enumerates candidate files, fans
// them across a worker pool running the content processor, and prunes the
// cache of stale rows once every candidate has been handled.
type Scanner struct {
	store   *store.Store
	proc    *processor.Processor
	workers int
}

// New creates a Scanner with the given worker pool size.
func New(st *store.Store, workerCount int) *Scanner {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Scanner{
		store:   st,
		proc:    processor.New(st),
		workers: workerCount,
	}
}

// Processor exposes the shared content processor, mainly so callers can
// read its cache hit/miss counters.
func (s *Scanner) Processor() *processor.Processor {
	return s.proc
}

// Scan processes every candidate image under root and returns their
// records. Result order is unspecified. Files that cannot be processed are
// silently excluded, so a scan always succeeds with a possibly partial set.
//
// progress may be nil. When given, it is invoked once with (0, total)
// before any work, then after every 10th completion and unconditionally on
// the last one. Once started, a scan runs every enumerated candidate to
// completion; there is no cancellation.
func (s *Scanner) Scan(root string, recursive bool, progress ProgressFunc) []store.ImageRecord {
	start := time.Now()
	metrics.ScansTotal.Inc()

	paths := listImages(root, recursive)
	total := len(paths)
	logging.Info("Scanning %s (recursive: %v): %d candidate files", root, recursive, total)

	if progress == nil {
		progress = func(int, int) {}
	}
	// Observers learn the total immediately, even for an empty directory.
	progress(0, total)

	records := s.processAll(paths, progress)

	// Files that disappeared since the previous scan leave stale cache rows
	// behind; pruning is best effort and never blocks delivering results.
	valid := make(map[string]struct{}, len(records))
	for i := range records {
		valid[records[i].Path] = struct{}{}
	}
	if pruned, err := s.store.Prune(valid); err != nil {
		logging.Error("Cache prune failed: %v", err)
	} else if pruned > 0 {
		logging.Info("Pruned %d stale cache rows", pruned)
	}

	duration := time.Since(start)
	metrics.ScanDuration.Observe(duration.Seconds())
	metrics.ScanFilesProcessed.Add(float64(total))
	logging.Info("Scan complete: %d of %d files in results (%v)", len(records), total, duration)

	return records
}

// processAll fans the candidate paths across the worker pool and collects
// the resulting records.
func (s *Scanner) processAll(paths []string, progress ProgressFunc) []store.ImageRecord {
	total := len(paths)
	if total == 0 {
		return nil
	}

	workers := s.workers
	if workers > total {
		workers = total
	}
	metrics.ScanWorkers.Set(float64(workers))

	jobs := make(chan string)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		records   []store.ImageRecord
		completed atomic.Int64
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				rec := s.proc.Process(path)
				if rec != nil {
					mu.Lock()
					records = append(records, *rec)
					mu.Unlock()
				}

				current := int(completed.Add(1))
				if current%progressInterval == 0 || current == total {
					progress(current, total)
				}
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return records
}
