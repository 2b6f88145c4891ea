package processor

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"dupescan/internal/hash"
	"dupescan/internal/logging"
	"dupescan/internal/metrics"
	"dupescan/internal/store"
)

// Processor runs the per-file pipeline: stat, validity-checked cache lookup,
// and on a miss a single read of the file from which the content hash,
// perceptual hash, and metadata are all computed independently.
//
// Processor is safe for concurrent use; scan workers share one instance.
type Processor struct {
	store *store.Store

	// Instrumentation counters, readable by callers and tests.
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// New creates a Processor writing through to the given cache store.
func New(st *store.Store) *Processor {
	return &Processor{store: st}
}

// CacheHits returns the number of files served from the cache since creation.
func (p *Processor) CacheHits() int64 {
	return p.cacheHits.Load()
}

// CacheMisses returns the number of files that required recomputation.
func (p *Processor) CacheMisses() int64 {
	return p.cacheMisses.Load()
}

// Process handles one file path and returns its record, or nil if the file
// could not be processed at all (stat or read failure). A corrupt image is
// not a failure: the record is kept, only its perceptual hash is absent.
//
// On a cache hit the stored record is returned unchanged with no file read
// and no recomputation; this is the dominant cost-avoidance mechanism of
// the scanner.
func (p *Processor) Process(path string) *store.ImageRecord {
	info, err := os.Stat(path)
	if err != nil {
		logging.Debug("Skipping %s: stat failed: %v", path, err)
		metrics.FilesSkipped.Inc()
		return nil
	}

	size := info.Size()
	modifiedAt := info.ModTime().Unix()

	cached, err := p.store.Get(path, modifiedAt, size)
	if err != nil {
		// Treat a broken lookup as a miss; recomputation is always safe.
		logging.Error("Cache lookup failed for %s: %v", path, err)
	}
	if cached != nil {
		p.cacheHits.Add(1)
		metrics.CacheHits.Inc()
		return cached
	}
	p.cacheMisses.Add(1)
	metrics.CacheMisses.Inc()

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("Skipping %s: read failed: %v", path, err)
		metrics.FilesSkipped.Inc()
		return nil
	}

	contentHash := hash.Content(data)

	var phash *string
	if h, err := hash.Difference(data); err != nil {
		// Corrupt or unsupported image: keep the file, drop the hash.
		logging.Debug("No perceptual hash for %s: %v", path, err)
		metrics.HashFailures.Inc()
	} else {
		phash = &h
	}

	meta := extractMetadata(data)

	// EXIF dimensions are often missing (PNG, WebP). A header-only probe
	// fills them in without decoding the full image.
	if meta == nil || meta.Width == nil {
		if w, h, err := probeDimensions(data); err == nil {
			if meta == nil {
				meta = &store.Metadata{}
			}
			meta.Width = &w
			meta.Height = &h
		}
	}

	rec := &store.ImageRecord{
		Path:        path,
		Name:        filepath.Base(path),
		Size:        size,
		CreatedAt:   creationTime(info),
		ModifiedAt:  modifiedAt,
		PHash:       phash,
		ContentHash: &contentHash,
		Meta:        meta,
	}

	if err := p.store.Put(rec); err != nil {
		// The record is still returned; it just won't be cached this time.
		logging.Error("Cache write failed for %s: %v", path, err)
	}

	return rec
}
