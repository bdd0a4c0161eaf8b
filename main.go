package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"picwall/internal/handlers"
	"picwall/internal/logging"
	"picwall/internal/metrics"
	"picwall/internal/middleware"
	"picwall/internal/pipeline"
	"picwall/internal/preview"
	"picwall/internal/startup"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Initialize libvips for decode-time shrinking and WebP previews.
	// Without it the build falls back to pure-Go JPEG previews.
	if err := preview.InitVips(); err != nil {
		logging.Warn("libvips unavailable, previews fall back to JPEG: %v", err)
	}

	if config.MetricsEnabled {
		metrics.InitializeMetrics()
	}

	// Build the gallery. This blocks until every image has been
	// transcoded and the asset table is frozen; the server below never
	// observes a partially built gallery.
	startup.LogBuildStarted(config.GalleryDir)
	snapshot, err := pipeline.New(config.GalleryDir, 0, config.PreviewQuality).Run()
	if err != nil {
		startup.LogFatal("Gallery build failed: %v", err)
	}
	startup.LogBuildComplete(snapshot.Stats().Succeeded, snapshot.Stats().Duration)

	// Initialize handlers and router
	h := handlers.New(snapshot)
	router := setupRouter(h, config)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Logger(loggingConfig)(router)

	// Apply metrics middleware
	if config.MetricsEnabled {
		handler = middleware.Metrics(middleware.DefaultMetricsConfig())(handler)
	}

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start graceful shutdown handler
	go handleShutdown(srv)

	// Start server
	startup.LogServerStarted(config.Port, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers, config *startup.Config) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Index).Methods("GET")

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	if config.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// Everything else resolves against the frozen asset table: originals,
	// previews, and the archive.
	r.PathPrefix("/").HandlerFunc(h.GetAsset).Methods("GET")

	return r
}

func handleShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	preview.ShutdownVips()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	}

	startup.LogShutdownComplete()
}
