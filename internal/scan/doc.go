// Package scan orchestrates the parallel scan pipeline.
//
// A scan enumerates candidate image files under a root directory (either
// the full subtree or just direct children), distributes them across a
// bounded worker pool running the content processor, reports throttled
// progress to an injected observer, and finally prunes cache rows for files
// that no longer exist.
//
// One file's failure never aborts the batch: unreadable files are excluded
// from results, and every enumerated candidate is always attempted once a
// scan has started. Result order is unspecified.
//
// The package also hosts the two operations adjacent to scanning: batch
// deletion with per-path outcomes, and delegating a file to the operating
// system's default viewer.
package scan
