// Package store implements the persistent fingerprint cache backing the
// duplicate scanner.
//
// The cache is a single SQLite table keyed by file path, holding the file's
// last observed size and timestamps plus its computed content hash,
// perceptual hash, and embedded metadata. Secondary indexes exist on both
// hash columns for direct lookups.
//
// A cached row is only trusted while the file's (size, modification time)
// pair still matches what is on disk; Get enforces this in the query itself,
// so a stale row simply reads as a miss. Rows for files that vanish from
// disk are removed by Prune after each scan.
package store
