package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/advert/internal/atomicfile"
)

type persistedConfig struct {
	Display *persistedDisplay `toml:"display,omitempty"`
	UI      *persistedUI      `toml:"ui,omitempty"`
}

type persistedDisplay struct {
	Color    *int    `toml:"color,omitempty"`
	Currency *string `toml:"currency,omitempty"`
	NoColor  *bool   `toml:"no_color,omitempty"`
}

type persistedUI struct {
	Accent *string `toml:"accent,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to path atomically. Zero values are omitted so
// the file only records what the user changed.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var out persistedConfig
	display := persistedDisplay{Currency: nonEmptyPtr(cfg.Display.Currency)}
	if cfg.Display.Color != 0 {
		color := cfg.Display.Color
		display.Color = &color
	}
	if cfg.Display.NoColor {
		noColor := true
		display.NoColor = &noColor
	}
	if display.Color != nil || display.Currency != nil || display.NoColor != nil {
		out.Display = &display
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUI{Accent: accent}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
