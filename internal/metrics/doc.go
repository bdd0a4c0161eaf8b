// Package metrics defines the Prometheus collectors exported by picwall.
//
// Two groups exist: HTTP serving metrics (request counts, latencies,
// in-flight gauge) recorded by the middleware, and build pipeline metrics
// recorded once while the gallery is assembled (scan counts, per-image
// transcode outcomes and latencies, final archive size and asset counts).
//
// All collectors are registered with the default registry via promauto and
// exposed on /metrics when METRICS_ENABLED is set.
package metrics
