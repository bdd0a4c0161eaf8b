// Package pipeline assembles the gallery before the server starts.
//
// The build fans one transcode task per source image out over a bounded
// worker set. Workers share nothing and report every outcome, success or
// failure, over a single completion channel; the channel closing after the
// last worker exits is the barrier that separates the concurrent phase
// from aggregation.
//
// Aggregation runs on one goroutine. It slots results by their scan
// ordinal, then walks the slots in order to append archive entries, fill
// the asset table and build the presentation list, so the output order is
// always the directory scan order no matter which worker finished first.
// A failed image is logged and left out; it never aborts the build.
//
// Run returns only after the asset table has been frozen, so callers can
// hand the snapshot to the HTTP layer without further synchronization.
package pipeline
