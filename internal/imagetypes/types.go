package imagetypes

import (
	"path/filepath"
	"strings"
)

// ImageExtensions maps file extensions to whether they are supported image formats.
// Only formats the processing pipeline can decode are listed; everything else is
// ignored during enumeration.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImage reports whether the given path has a supported image extension.
// The check is case-insensitive.
func IsImage(path string) bool {
	return ImageExtensions[strings.ToLower(filepath.Ext(path))]
}
