// Package duplicate clusters scanned image records into duplicate groups.
//
// Exact duplicates share a SHA-256 content hash. Near duplicates are found
// by greedy chained grouping over perceptual-hash Hamming distance. Both
// algorithms operate on an in-memory result set and drop singleton groups.
package duplicate
