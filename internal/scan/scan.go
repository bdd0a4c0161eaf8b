package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"picwall/internal/logging"
	"picwall/internal/mediatypes"
)

// SourceImage is one candidate gallery entry found by the scanner.
type SourceImage struct {
	// Path is the absolute or directory-relative path used to read the file.
	Path string
	// FileName is the base name, e.g. "a.jpg". Archive entries and the full
	// image route are derived from it.
	FileName string
	// DisplayName is the filename stem, e.g. "a". The preview route and the
	// listing page label are derived from it.
	DisplayName string
	// Ordinal is the image's position in directory order. It is the only
	// field that restores a deterministic order after the concurrent
	// transcode fan-out completes in arbitrary order.
	Ordinal int
}

// Directory lists dir and returns the JPEG sources it contains, in
// directory-iteration order. That order is canonical for the whole build:
// the presentation list and the archive follow it regardless of which
// transcode finishes first.
//
// Failing to list the directory itself is fatal to the build and returned
// as an error. A single unreadable entry is skipped with a warning.
func Directory(dir string) ([]SourceImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing gallery directory %s: %w", dir, err)
	}

	var sources []SourceImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !mediatypes.IsSourceImage(name) {
			continue
		}
		if _, err := entry.Info(); err != nil {
			logging.Warn("Skipping unreadable entry %s: %v", name, err)
			continue
		}

		sources = append(sources, SourceImage{
			Path:        filepath.Join(dir, name),
			FileName:    name,
			DisplayName: mediatypes.Stem(name),
			Ordinal:     len(sources),
		})
	}

	logging.Debug("Scanner found %d JPEG source(s) in %s", len(sources), dir)
	return sources, nil
}
