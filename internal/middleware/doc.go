// Package middleware provides the HTTP middleware chain: W3C Extended Log
// Format request logging and Prometheus request metrics.
//
// Asset requests (.jpg/.jpeg/.webp paths) are skipped by the request log by
// default to keep log volume proportional to page views rather than image
// count; set LOG_STATIC_FILES to log them. The metrics middleware collapses
// per-image paths into placeholders to bound label cardinality.
package middleware
