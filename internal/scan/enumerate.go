package scan

import (
	"io/fs"
	"os"
	"path/filepath"

	"dupescan/internal/imagetypes"
	"dupescan/internal/logging"
)

// listImages enumerates candidate image files under root. Recursive mode
// descends the full subtree; otherwise only direct children are inspected.
// Enumeration is best effort: unreadable directories and entries are
// skipped without surfacing an error, so a scan over a partially readable
// tree still yields everything that could be seen.
func listImages(root string, recursive bool) []string {
	if recursive {
		return walkImages(root)
	}
	return readDirImages(root)
}

func walkImages(root string) []string {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Debug("Skipping %s during enumeration: %v", path, err)
			return nil
		}
		if d.Type().IsRegular() && imagetypes.IsImage(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logging.Debug("Enumeration of %s ended early: %v", root, err)
	}
	return paths
}

func readDirImages(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		logging.Debug("Cannot read directory %s: %v", root, err)
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && imagetypes.IsImage(entry.Name()) {
			paths = append(paths, filepath.Join(root, entry.Name()))
		}
	}
	return paths
}
