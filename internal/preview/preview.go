package preview

import (
	"bytes"
	"fmt"

	"picwall/internal/logging"

	"github.com/disintegration/imaging"
)

// Preview bounding box. Decoded previews never exceed these dimensions and
// keep the source aspect ratio; images already within the box are not
// enlarged.
const (
	MaxWidth  = 900
	MaxHeight = 600
)

// DefaultQuality is the lossy encoder quality used when none is configured.
// Mid-quality keeps previews small without visible blocking on a listing
// page.
const DefaultQuality = 75

// Generator produces downscaled lossy previews from original JPEG bytes.
//
// When libvips has been initialized (see InitVips), generation uses
// decode-time shrinking and WebP output. Otherwise a pure-Go path decodes
// the full frame, fits it into the bounding box and re-encodes as JPEG.
// The chosen format is fixed for the generator's lifetime so every preview
// of one build shares a content type.
type Generator struct {
	quality int
	useVips bool
}

// NewGenerator returns a generator with the given encoder quality (1-100).
// Out-of-range values fall back to DefaultQuality.
func NewGenerator(quality int) *Generator {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	g := &Generator{quality: quality, useVips: IsVipsAvailable()}
	logging.Debug("Preview generator: format=%s quality=%d", g.Format(), g.quality)
	return g
}

// Format returns the output format name, "webp" or "jpeg".
func (g *Generator) Format() string {
	if g.useVips {
		return "webp"
	}
	return "jpeg"
}

// Quality returns the configured encoder quality.
func (g *Generator) Quality() int {
	return g.quality
}

// Generate decodes data as an image, downscales it into the preview
// bounding box and re-encodes it lossily. The input bytes are not modified.
func (g *Generator) Generate(data []byte) ([]byte, error) {
	if g.useVips {
		return generateWithVips(data, g.quality)
	}
	return g.generatePureGo(data)
}

// generatePureGo is the fallback path without libvips: full decode, then
// fit and JPEG encode. It allocates a full-resolution intermediate, which
// the vips path avoids.
func (g *Generator) generatePureGo(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	thumb := imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(g.quality)); err != nil {
		return nil, fmt.Errorf("encoding preview: %w", err)
	}
	return buf.Bytes(), nil
}
