package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picwall_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "picwall_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "picwall_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Build pipeline metrics. The build runs exactly once per process, so these
// are gauges stamped when the asset table freezes, plus per-image counters
// incremented while the transcode fan-out runs.
var (
	BuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "picwall_build_duration_seconds",
			Help: "Wall-clock duration of the gallery build phase",
		},
	)

	BuildImagesScanned = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "picwall_build_images_scanned",
			Help: "Number of candidate JPEG files found by the scanner",
		},
	)

	BuildWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "picwall_build_workers",
			Help: "Number of transcode workers used for the build",
		},
	)

	TranscodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "picwall_transcodes_total",
			Help: "Total number of transcode attempts by outcome",
		},
		[]string{"status"},
	)

	TranscodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "picwall_transcode_duration_seconds",
			Help:    "Duration of individual image transcodes",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ArchiveSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "picwall_archive_size_bytes",
			Help: "Size of the finalized zip archive in bytes",
		},
	)

	AssetsServed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "picwall_assets",
			Help: "Number of entries in the frozen asset table by kind",
		},
		[]string{"kind"},
	)
)

// InitializeMetrics pre-populates expected label combinations so every
// metric is exported from the first Prometheus scrape.
// Call this once at startup.
func InitializeMetrics() {
	for _, status := range []string{"success", "error"} {
		TranscodesTotal.WithLabelValues(status)
	}
	for _, kind := range []string{"full", "preview", "archive"} {
		AssetsServed.WithLabelValues(kind)
	}
}
