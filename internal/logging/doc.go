// Package logging provides a simple leveled logging interface for the
// duplicate scanner.
//
// It supports the following log levels:
//   - DEBUG: Verbose per-file diagnostics (skipped files, cache decisions)
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable, or
// DEBUG=true as a shortcut for verbose output.
package logging
