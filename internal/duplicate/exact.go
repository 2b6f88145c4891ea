package duplicate

import (
	"sort"

	"dupescan/internal/store"
)

// ExactGroups clusters records by content-hash equality. Records without a
// content hash are ignored, and only groups with two or more members are
// returned. Groups are ordered by hash so repeated calls over the same set
// produce identical output.
func ExactGroups(records []store.ImageRecord) [][]store.ImageRecord {
	byHash := make(map[string][]store.ImageRecord)
	for _, rec := range records {
		if rec.ContentHash == nil {
			continue
		}
		byHash[*rec.ContentHash] = append(byHash[*rec.ContentHash], rec)
	}

	hashes := make([]string, 0, len(byHash))
	for h, group := range byHash {
		if len(group) > 1 {
			hashes = append(hashes, h)
		}
	}
	sort.Strings(hashes)

	groups := make([][]store.ImageRecord, 0, len(hashes))
	for _, h := range hashes {
		groups = append(groups, byHash[h])
	}
	return groups
}
