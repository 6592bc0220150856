package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moonlitrapids/qr-app/internal/config"
	"github.com/moonlitrapids/qr-app/internal/encode"
	"github.com/moonlitrapids/qr-app/internal/prefs"
	"github.com/moonlitrapids/qr-app/internal/state"
	"github.com/moonlitrapids/qr-app/internal/ui"
	"github.com/moonlitrapids/qr-app/internal/worker"
)

// Options configure the application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/qrapp/prefs.toml
	Level      string // override starting EC level (optional)
}

// Run boots the TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	enc := encode.QREncoder{}
	results := &state.ResultStore{}

	var coord *state.Coordinator
	w := worker.Start(enc, func(seq uint64, img *encode.Image, err error) {
		coord.Complete(seq, img, err)
	})
	defer w.Stop()

	coord = state.NewCoordinator(resolveLevel(opts.Level, userPrefs, cfg), results, w.Dispatch)

	uiOpts := ui.Options{
		Context:   ctx,
		Input:     coord.Input(),
		Results:   results,
		Export:    exportFunc(enc, cfg),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// resolveLevel picks the starting EC level: explicit flag, then remembered
// prefs, then the config default.
func resolveLevel(flagLevel string, p prefs.Prefs, cfg config.Config) encode.ECLevel {
	if strings.TrimSpace(flagLevel) != "" {
		return encode.ParseLevel(flagLevel)
	}
	if strings.TrimSpace(p.Level) != "" {
		return encode.ParseLevel(p.Level)
	}
	return cfg.DefaultLevel
}

// exportFunc builds the PNG export capability handed to the UI.
func exportFunc(enc encode.QREncoder, cfg config.Config) ui.ExportFunc {
	return func(text string, level encode.ECLevel) (string, error) {
		png, err := enc.EncodePNG(text, level, cfg.PNGSize)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
		path := cfg.ExportFile(time.Now())
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return "", fmt.Errorf("write png: %w", err)
		}
		return path, nil
	}
}
