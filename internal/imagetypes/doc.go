// Package imagetypes defines the fixed allow-list of image file extensions
// considered by the scanner. Files with any other extension are never
// enumerated, read, or cached.
package imagetypes
