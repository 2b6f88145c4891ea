package middleware

import (
	"net/http"
	"time"

	"dupescan/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code and bytes
// written.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// LoggingConfig holds configuration for the logging middleware.
type LoggingConfig struct {
	// SkipPaths are request paths that should not be logged.
	SkipPaths []string
	// LogHealthChecks controls whether health endpoints are logged.
	LogHealthChecks bool
}

// DefaultLoggingConfig returns a sensible default configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:       []string{},
		LogHealthChecks: false,
	}
}

// Logger returns a middleware that logs one line per request with method,
// path, status, response size, and duration.
func Logger(config LoggingConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipLogging(config, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			wrapped := newResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(wrapped, r)

			logging.Info("%s %s %d %dB %v",
				r.Method, r.URL.Path, wrapped.statusCode, wrapped.bytesWritten, time.Since(start))
		})
	}
}

func skipLogging(config LoggingConfig, path string) bool {
	if !config.LogHealthChecks && (path == "/healthz" || path == "/health") {
		return true
	}
	for _, skip := range config.SkipPaths {
		if path == skip {
			return true
		}
	}
	return false
}
