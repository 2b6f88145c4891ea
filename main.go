package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dupescan/internal/handlers"
	"dupescan/internal/logging"
	"dupescan/internal/metrics"
	"dupescan/internal/middleware"
	"dupescan/internal/scan"
	"dupescan/internal/startup"
	"dupescan/internal/store"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	st, err := store.Open(config.DataDir)
	if err != nil {
		startup.LogFatal("Failed to open fingerprint cache: %v", err)
	}
	defer st.Close()

	scanner := scan.New(st, config.ScanWorkers)

	h := handlers.New(st, scanner, config.SimilarityThreshold)

	router := setupRouter(h)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	logged := middleware.Logger(loggingConfig)(router)
	handler := middleware.Metrics(middleware.DefaultMetricsConfig())(logged)

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // scans of large trees can take a while
		IdleTimeout:  60 * time.Second,
	}

	var collector *metrics.Collector
	if config.MetricsEnabled {
		collector = metrics.NewCollector(st, 30*time.Second)
		collector.Start()
		go serveMetrics(h, config.MetricsPort)
	}

	go handleShutdown(srv, collector)

	startup.LogServerStarted(config.Port, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scan", h.Scan).Methods("GET")
	api.HandleFunc("/scan/progress", h.Progress).Methods("GET")
	api.HandleFunc("/duplicates/exact", h.ExactDuplicates).Methods("POST")
	api.HandleFunc("/duplicates/similar", h.SimilarDuplicates).Methods("POST")
	api.HandleFunc("/delete", h.Delete).Methods("POST")
	api.HandleFunc("/open", h.Open).Methods("POST")

	return r
}

func serveMetrics(h *handlers.Handlers, port string) {
	m := http.NewServeMux()
	m.Handle("/metrics", h.MetricsHandler())
	logging.Info("Metrics listening on :%s", port)
	if err := http.ListenAndServe(":"+port, m); err != nil {
		logging.Error("Metrics server error: %v", err)
	}
}

func handleShutdown(srv *http.Server, collector *metrics.Collector) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logging.Info("Received %s, shutting down", sig)

	if collector != nil {
		collector.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	}
}
