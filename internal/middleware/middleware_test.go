package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"dupescan/internal/metrics"
)

func TestResponseWriterCapturesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK) // second call must not override

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusNotFound)
	}
	if rr.Code != http.StatusNotFound {
		t.Errorf("recorded code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestResponseWriterCountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	if _, err := rw.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := rw.Write([]byte(" world")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if rw.bytesWritten != 11 {
		t.Errorf("bytesWritten = %d, want 11", rw.bytesWritten)
	}
	if rw.statusCode != http.StatusOK {
		t.Errorf("implicit statusCode = %d, want %d", rw.statusCode, http.StatusOK)
	}
}

func TestSkipLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config LoggingConfig
		path   string
		want   bool
	}{
		{"healthz skipped by default", DefaultLoggingConfig(), "/healthz", true},
		{"health skipped by default", DefaultLoggingConfig(), "/health", true},
		{"api path logged", DefaultLoggingConfig(), "/api/scan", false},
		{"healthz logged when enabled", LoggingConfig{LogHealthChecks: true}, "/healthz", false},
		{"explicit skip path", LoggingConfig{SkipPaths: []string{"/noisy"}}, "/noisy", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := skipLogging(tt.config, tt.path); got != tt.want {
				t.Errorf("skipLogging(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	t.Parallel()

	handler := Logger(DefaultLoggingConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/scan", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
	if rr.Body.String() != "short and stout" {
		t.Errorf("body = %q, want passthrough", rr.Body.String())
	}
}

func TestMetricsRecordsRequest(t *testing.T) {
	handler := Metrics(DefaultMetricsConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	path := "/api/test-metrics-records"
	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, path, "202"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, path, "202"))
	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestMetricsSkipsConfiguredPaths(t *testing.T) {
	handler := Metrics(DefaultMetricsConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))
	if after != before {
		t.Errorf("request counter moved for skipped path: %v -> %v", before, after)
	}
}
