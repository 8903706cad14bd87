// Package config handles global advert configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/advert/internal/ui"
)

// Config represents the global advert configuration.
type Config struct {
	// Display controls how record display lines are rendered.
	Display DisplayConfig `toml:"display" json:"display"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui" json:"ui"`
}

// DisplayConfig controls record display lines.
type DisplayConfig struct {
	// Color overrides the SGR foreground code of display lines (30-37, 90-97).
	// Zero keeps each record kind's own color.
	Color int `toml:"color" json:"color,omitempty"`

	// Currency is appended to prices. Empty means "₽".
	Currency string `toml:"currency" json:"currency,omitempty"`

	// NoColor disables escape sequences entirely.
	NoColor bool `toml:"no_color" json:"no_color"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for field names and headings.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent" json:"accent,omitempty"`
}

// Validate checks values that cannot be enforced by the TOML decoder.
func (c *Config) Validate() error {
	if c.Display.Color != 0 && !ui.ValidColorCode(c.Display.Color) {
		return fmt.Errorf("display.color %d is not a foreground color code (30-37, 90-97)", c.Display.Color)
	}
	if strings.ContainsAny(c.Display.Currency, "\n\r") {
		return fmt.Errorf("display.currency must be a single line")
	}
	return nil
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath returns the explicit path when set, else DefaultPath.
func ResolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/advert/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "advert", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "advert", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# advert configuration

# [display]
# SGR foreground code for display lines (30-37, 90-97). 0 keeps the default yellow.
# color = 33
# currency = "₽"
# no_color = false

# Optional accent color for field names in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

// CreateDefault writes a commented default config to path if nothing
// exists there yet. It returns true when a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := WriteDefault(path); err != nil {
		return false, err
	}
	return true, nil
}

// WriteDefault writes the commented default config to path, replacing any
// existing file.
func WriteDefault(path string) error {
	return writeFile(path, []byte(defaultConfig))
}
