// Package workers calculates worker pool sizes for the parallel scan
// pipeline based on available hardware parallelism.
package workers
