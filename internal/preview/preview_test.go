package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

// encodeTestJPEG produces an in-memory JPEG of the given size.
func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding preview: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestGeneratorFallbackFormat(t *testing.T) {
	// Tests never initialize libvips, so the pure-Go path must be active.
	g := NewGenerator(DefaultQuality)
	if g.Format() != "jpeg" {
		t.Fatalf("Format() = %q, want jpeg without vips", g.Format())
	}
}

func TestGenerateDownscalesWithinBox(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"landscape larger than box", 1800, 1200},
		{"portrait larger than box", 1200, 1800},
		{"wide panorama", 3000, 500},
	}

	g := NewGenerator(DefaultQuality)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.Generate(encodeTestJPEG(t, tt.width, tt.height))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			w, h := decodeDims(t, out)
			if w > MaxWidth || h > MaxHeight {
				t.Errorf("preview is %dx%d, exceeds %dx%d", w, h, MaxWidth, MaxHeight)
			}

			// Aspect ratio preserved within rounding.
			srcRatio := float64(tt.width) / float64(tt.height)
			gotRatio := float64(w) / float64(h)
			if diff := srcRatio - gotRatio; diff < -0.05 || diff > 0.05 {
				t.Errorf("aspect ratio drifted: source %.3f, preview %.3f", srcRatio, gotRatio)
			}
		})
	}
}

func TestGenerateDoesNotEnlarge(t *testing.T) {
	g := NewGenerator(DefaultQuality)
	out, err := g.Generate(encodeTestJPEG(t, 300, 200))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	w, h := decodeDims(t, out)
	if w != 300 || h != 200 {
		t.Errorf("small image resized to %dx%d, want 300x200 untouched", w, h)
	}
}

func TestGenerateRejectsCorruptInput(t *testing.T) {
	g := NewGenerator(DefaultQuality)
	if _, err := g.Generate([]byte("this is not a jpeg")); err == nil {
		t.Error("expected error for corrupt input")
	}
	if _, err := g.Generate(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestGenerateLeavesInputUntouched(t *testing.T) {
	g := NewGenerator(DefaultQuality)
	src := encodeTestJPEG(t, 1000, 800)
	orig := make([]byte, len(src))
	copy(orig, src)

	if _, err := g.Generate(src); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(src, orig) {
		t.Error("Generate modified its input buffer")
	}
}

func TestQualityClamping(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultQuality},
		{-5, DefaultQuality},
		{101, DefaultQuality},
		{35, 35},
		{100, 100},
		{1, 1},
	}
	for _, tt := range tests {
		if got := NewGenerator(tt.in).Quality(); got != tt.want {
			t.Errorf("NewGenerator(%d).Quality() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
