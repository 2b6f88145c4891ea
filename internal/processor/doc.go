// Package processor implements the per-file content pipeline.
//
// For each candidate path it stats the file, consults the fingerprint cache
// keyed by (path, modification time, size), and only on a miss reads the
// file once to compute:
//   - the SHA-256 content hash (exact-duplicate key)
//   - the 64-bit difference hash (similarity fingerprint)
//   - EXIF metadata: capture date, camera make/model, pixel dimensions,
//     with a header-only dimension probe as fallback
//
// A file that cannot be statted or read is omitted entirely; a file whose
// image data cannot be decoded keeps its record but has no perceptual hash.
package processor
