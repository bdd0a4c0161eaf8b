// Package handlers implements the HTTP serving layer of the gallery.
//
// All content handlers are pure reads against the frozen asset snapshot:
// the listing page renders the presentation list in scan order, and the
// asset handler serves originals, previews and the archive by looking up
// the request path in the table. Health, readiness and version endpoints
// round out the surface.
package handlers
