// Package startup handles process configuration and startup logging.
//
// Configuration comes from environment variables with sensible defaults
// (GALLERY_DIR, PORT, PREVIEW_QUALITY, METRICS_ENABLED, LOG_STATIC_FILES,
// LOG_HEALTH_CHECKS); a .env file in the working directory is honored for
// local development. The package also carries the ldflags-injected build
// information and the banner/phase log helpers used by main.
package startup
