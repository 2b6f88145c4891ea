package duplicate

import (
	"dupescan/internal/hash"
	"dupescan/internal/store"
)

// DefaultThreshold is the maximum Hamming distance at which two perceptual
// hashes are considered similar.
const DefaultThreshold = 5

// SimilarGroups clusters records by perceptual-hash proximity using a
// greedy single pass over the input order.
//
// A record joins a growing group if its hash is within threshold of ANY
// current member, not just the seed, so chains are allowed: A~B and B~C
// group all three even when A and C individually exceed the threshold.
// Group composition can therefore depend on input order. Records without a
// perceptual hash are ignored, and singleton groups are dropped.
//
// The pass is quadratic in the number of hashed records, which is fine at
// photo-library scale but not past roughly tens of thousands of images.
func SimilarGroups(records []store.ImageRecord, threshold int) [][]store.ImageRecord {
	if threshold < 0 {
		threshold = DefaultThreshold
	}

	hashed := make([]store.ImageRecord, 0, len(records))
	for _, rec := range records {
		if rec.PHash != nil {
			hashed = append(hashed, rec)
		}
	}

	var groups [][]store.ImageRecord
	assigned := make([]bool, len(hashed))

	for i := range hashed {
		if assigned[i] {
			continue
		}

		group := []store.ImageRecord{hashed[i]}

		for j := i + 1; j < len(hashed); j++ {
			if assigned[j] {
				continue
			}
			if withinThreshold(group, *hashed[j].PHash, threshold) {
				group = append(group, hashed[j])
				assigned[j] = true
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
			assigned[i] = true
		}
	}

	return groups
}

// withinThreshold reports whether candidate is similar to any member of the
// growing group.
func withinThreshold(group []store.ImageRecord, candidate string, threshold int) bool {
	for i := range group {
		if hash.Distance(*group[i].PHash, candidate) <= threshold {
			return true
		}
	}
	return false
}
