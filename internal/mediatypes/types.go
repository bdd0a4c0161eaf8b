package mediatypes

import (
	"path/filepath"
	"strings"
)

// AssetKind classifies what a served byte buffer contains.
type AssetKind string

const (
	// KindFull is an untouched original JPEG.
	KindFull AssetKind = "full"
	// KindPreview is a downscaled lossy preview.
	KindPreview AssetKind = "preview"
	// KindArchive is the zip archive of all originals.
	KindArchive AssetKind = "archive"
)

// Content types for the assets the gallery serves.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeWebP = "image/webp"
	ContentTypeZip  = "application/zip"
)

// sourceExtensions maps the lowercase extensions accepted as gallery sources.
var sourceExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// IsSourceImage reports whether name has a JPEG extension. Matching is
// case-insensitive, so ".JPG" and ".Jpeg" qualify as well.
func IsSourceImage(name string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(name))]
}

// Stem returns the filename without its extension, used as the display name
// and as the basis for the preview route.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// PreviewContentType returns the content type for a preview encoded in the
// given format ("webp" or "jpeg").
func PreviewContentType(format string) string {
	if format == "webp" {
		return ContentTypeWebP
	}
	return ContentTypeJPEG
}

// PreviewExt returns the file extension (without dot) used in preview route
// keys for the given format.
func PreviewExt(format string) string {
	if format == "webp" {
		return "webp"
	}
	return "jpg"
}
