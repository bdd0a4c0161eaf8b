// Package mediatypes defines which files count as gallery sources and the
// content types of the assets the gallery serves.
//
// Only baseline/progressive JPEG files (.jpg, .jpeg, matched without regard
// to case) are accepted as sources. Served assets are originals (image/jpeg),
// lossy previews (image/webp or image/jpeg depending on the encoder in use),
// and the downloadable archive (application/zip).
package mediatypes
