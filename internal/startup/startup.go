package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"dupescan/internal/logging"
	"dupescan/internal/workers"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is the writable directory holding the fingerprint cache.
	DataDir string
	// Port serves the API.
	Port string
	// MetricsPort serves Prometheus metrics.
	MetricsPort string
	// MetricsEnabled toggles the metrics listener.
	MetricsEnabled bool
	// ScanWorkers is the scan worker pool size.
	ScanWorkers int
	// SimilarityThreshold is the maximum Hamming distance for near-duplicate
	// grouping.
	SimilarityThreshold int
	// LogHealthChecks controls request logging for health endpoints.
	LogHealthChecks bool
}

// LoadConfig loads configuration from environment variables and validates
// the data directory. A data directory that cannot be created or written is
// a fatal condition: the cache store cannot exist without it and there is
// no degraded mode.
func LoadConfig() (*Config, error) {
	printBanner()

	dataDir := getEnv("DATA_DIR", defaultDataDir())
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	scanWorkers := workers.Count(0)
	threshold := getEnvInt("SIMILARITY_THRESHOLD", 5)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", false)

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  DATA_DIR:             %s", dataDir)
	logging.Info("  PORT:                 %s", port)
	logging.Info("  METRICS_PORT:         %s", metricsPort)
	logging.Info("  METRICS_ENABLED:      %v", metricsEnabled)
	logging.Info("  SCAN_WORKERS:         %d", scanWorkers)
	logging.Info("  SIMILARITY_THRESHOLD: %d", threshold)
	logging.Info("  LOG_LEVEL:            %s", logging.GetLevel())

	if err := ensureDataDir(dataDir); err != nil {
		return nil, err
	}

	return &Config{
		DataDir:             dataDir,
		Port:                port,
		MetricsPort:         metricsPort,
		MetricsEnabled:      metricsEnabled,
		ScanWorkers:         scanWorkers,
		SimilarityThreshold: threshold,
		LogHealthChecks:     logHealthChecks,
	}, nil
}

// ensureDataDir creates the data directory if needed and verifies it is
// writable before the cache store tries to live there.
func ensureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".perm-test")
	if err := os.WriteFile(probe, []byte("test"), 0o600); err != nil {
		return fmt.Errorf("data directory %s is not writable: %w", dir, err)
	}
	_ = os.Remove(probe)

	return nil
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".dupescan")
	}
	return ".dupescan"
}

func printBanner() {
	logging.Info("============================================================")
	logging.Info("dupescan %s (commit %s, built %s)", Version, Commit, BuildTime)
	logging.Info("%s %s/%s, %d CPUs", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	logging.Info("============================================================")
}

// LogFatal logs a fatal startup error and exits.
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// LogServerStarted reports successful startup.
func LogServerStarted(port string, elapsed time.Duration) {
	logging.Info("Listening on :%s (started in %v)", port, elapsed.Round(time.Millisecond))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
