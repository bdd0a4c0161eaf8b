package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"picwall/internal/logging"
	"picwall/internal/preview"

	"github.com/joho/godotenv"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration
type Config struct {
	GalleryDir      string
	Port            string
	PreviewQuality  int
	MetricsEnabled  bool
	LogStaticFiles  bool
	LogHealthChecks bool
}

// LoadConfig loads and validates configuration from the environment. An
// optional .env file in the working directory is applied first; variables
// already set in the environment win over .env values.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file loaded: %v", err)
	}

	printBanner()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	galleryDir := getEnv("GALLERY_DIR", ".")
	port := getEnv("PORT", "8080")
	previewQuality := getEnvInt("PREVIEW_QUALITY", preview.DefaultQuality)
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	logStaticFiles := getEnvBool("LOG_STATIC_FILES", false)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)

	logging.Info("  GALLERY_DIR:       %s", galleryDir)
	logging.Info("  PORT:              %s", port)
	logging.Info("  PREVIEW_QUALITY:   %d", previewQuality)
	logging.Info("  METRICS_ENABLED:   %v", metricsEnabled)
	logging.Info("  LOG_STATIC_FILES:  %v", logStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS: %v", logHealthChecks)
	logging.Info("  LOG_LEVEL:         %s", logging.GetLevel())

	galleryDir, err := filepath.Abs(galleryDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gallery directory path: %w", err)
	}
	logging.Info("  Gallery directory (absolute): %s", galleryDir)

	info, err := os.Stat(galleryDir)
	if err != nil {
		return nil, fmt.Errorf("gallery directory is not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("gallery path %s is not a directory", galleryDir)
	}

	if previewQuality < 1 || previewQuality > 100 {
		logging.Warn("  Invalid PREVIEW_QUALITY %d, using default: %d", previewQuality, preview.DefaultQuality)
		previewQuality = preview.DefaultQuality
	}

	return &Config{
		GalleryDir:      galleryDir,
		Port:            port,
		PreviewQuality:  previewQuality,
		MetricsEnabled:  metricsEnabled,
		LogStaticFiles:  logStaticFiles,
		LogHealthChecks: logHealthChecks,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("  Invalid boolean for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("  Invalid integer for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func printBanner() {
	logging.Info("============================================================")
	logging.Info("  picwall %s (%s)", Version, Commit)
	logging.Info("  %s %s/%s", GoVersion, runtime.GOOS, runtime.GOARCH)
	logging.Info("============================================================")
}

// LogBuildStarted logs the start of the gallery build phase
func LogBuildStarted(dir string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("GALLERY BUILD")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Scanning %s", dir)
}

// LogBuildComplete logs the completion of the gallery build phase
func LogBuildComplete(images int, duration time.Duration) {
	logging.Info("  [OK] %d image(s) ready in %v", images, duration.Round(time.Millisecond))
}

// LogServerStarted logs that the HTTP server is accepting traffic
func LogServerStarted(port string, startupTime time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER READY")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Listening on :%s (startup took %v)", port, startupTime.Round(time.Millisecond))
}

// LogShutdownInitiated logs the start of graceful shutdown
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN (%s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownComplete logs the completion of graceful shutdown
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}
