package startup

import (
	"os"
	"path/filepath"
	"testing"

	"picwall/internal/preview"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GALLERY_DIR", dir)
	t.Setenv("PORT", "")
	t.Setenv("PREVIEW_QUALITY", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.GalleryDir != dir {
		t.Errorf("GalleryDir = %q, want %q", cfg.GalleryDir, dir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PreviewQuality != preview.DefaultQuality {
		t.Errorf("PreviewQuality = %d, want %d", cfg.PreviewQuality, preview.DefaultQuality)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GALLERY_DIR", dir)
	t.Setenv("PORT", "9999")
	t.Setenv("PREVIEW_QUALITY", "35")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.PreviewQuality != 35 {
		t.Errorf("PreviewQuality = %d, want 35", cfg.PreviewQuality)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
}

func TestLoadConfigInvalidQualityFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GALLERY_DIR", dir)
	t.Setenv("PREVIEW_QUALITY", "250")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PreviewQuality != preview.DefaultQuality {
		t.Errorf("PreviewQuality = %d, want default %d", cfg.PreviewQuality, preview.DefaultQuality)
	}
}

func TestLoadConfigMissingDirectory(t *testing.T) {
	t.Setenv("GALLERY_DIR", filepath.Join(t.TempDir(), "absent"))
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for missing gallery directory")
	}
}

func TestLoadConfigFileAsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GALLERY_DIR", file)
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error when gallery path is a file")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("PICWALL_TEST_STR", "value")
	if got := getEnv("PICWALL_TEST_STR", "fallback"); got != "value" {
		t.Errorf("getEnv = %q", got)
	}
	if got := getEnv("PICWALL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q", got)
	}

	t.Setenv("PICWALL_TEST_BOOL", "nope")
	if got := getEnvBool("PICWALL_TEST_BOOL", true); got != true {
		t.Error("invalid bool should use fallback")
	}

	t.Setenv("PICWALL_TEST_INT", "17")
	if got := getEnvInt("PICWALL_TEST_INT", 1); got != 17 {
		t.Errorf("getEnvInt = %d", got)
	}
	t.Setenv("PICWALL_TEST_INT", "x")
	if got := getEnvInt("PICWALL_TEST_INT", 3); got != 3 {
		t.Errorf("getEnvInt invalid = %d, want fallback 3", got)
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.Version == "" || info.GoVersion == "" || info.OS == "" || info.Arch == "" {
		t.Errorf("incomplete build info: %+v", info)
	}
}
