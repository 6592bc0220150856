package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PNGSize != defaultPNGSize {
		t.Fatalf("PNGSize = %d, want %d", cfg.PNGSize, defaultPNGSize)
	}
	if cfg.DefaultLevel != encode.LevelDefault {
		t.Fatalf("DefaultLevel = %v, want %v", cfg.DefaultLevel, encode.LevelDefault)
	}

	wantDir, err := expandPath(defaultExportDir)
	if err != nil {
		t.Fatalf("expandPath(defaultExportDir) returned error: %v", err)
	}
	if cfg.ExportDir != wantDir {
		t.Fatalf("ExportDir = %q, want %q", cfg.ExportDir, wantDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
export_dir = "  ~/qr-exports  "
png_size = 1024
default_level = "q"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.ExportDir, home) {
		t.Fatalf("ExportDir = %q, want it under HOME %q", cfg.ExportDir, home)
	}
	if cfg.PNGSize != 1024 {
		t.Fatalf("PNGSize = %d, want 1024", cfg.PNGSize)
	}
	if cfg.DefaultLevel != encode.LevelQ {
		t.Fatalf("DefaultLevel = %v, want %v", cfg.DefaultLevel, encode.LevelQ)
	}
}

func TestLoad_InvalidTomlIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("png_size = {"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted invalid TOML")
	}
}

func TestConfig_ExportFileUsesStamp(t *testing.T) {
	cfg := Config{ExportDir: "/tmp/exports"}

	got := cfg.ExportFile(time.Date(2026, 8, 29, 14, 32, 15, 0, time.UTC))
	want := filepath.Join("/tmp/exports", "qr-20260829-143215.png")
	if got != want {
		t.Fatalf("ExportFile = %q, want %q", got, want)
	}
}
