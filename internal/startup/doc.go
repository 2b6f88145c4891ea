// Package startup handles application configuration from environment
// variables, data directory validation, and startup/shutdown logging.
package startup
