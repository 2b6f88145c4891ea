// Package hash computes the two fingerprints the scanner derives from each
// image file: a SHA-256 content hash for exact-duplicate detection, and a
// 64-bit difference hash (dHash) for visual similarity. It also provides
// the Hamming distance metric used to compare difference hashes.
package hash
