package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

// Config captures the application settings read at startup.
type Config struct {
	ExportDir    string
	PNGSize      int
	DefaultLevel encode.ECLevel
}

const (
	defaultConfigPath = "~/.config/qrapp/config.toml"
	defaultExportDir  = "~/Pictures/qrapp"
	defaultPNGSize    = 512
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. A present but unparseable file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ExportDir: mustExpand(defaultExportDir),
		PNGSize:   defaultPNGSize,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ExportDir    string `toml:"export_dir"`
		PNGSize      int    `toml:"png_size"`
		DefaultLevel string `toml:"default_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	if raw.PNGSize > 0 {
		cfg.PNGSize = raw.PNGSize
	}
	cfg.DefaultLevel = encode.ParseLevel(raw.DefaultLevel)

	return cfg, nil
}

// ExportFile returns the path a PNG exported at stamp is written to.
func (c Config) ExportFile(stamp time.Time) string {
	return filepath.Join(c.ExportDir, "qr-"+stamp.Format("20060102-150405")+".png")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
