package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("display and ui", func(t *testing.T) {
		path := writeConfig(t, `
[display]
color = 36
currency = "RUB"

[ui]
accent = "#abc"
`)
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Display.Color != 36 {
			t.Errorf("expected color 36, got %d", cfg.Display.Color)
		}
		if cfg.Display.Currency != "RUB" {
			t.Errorf("expected currency RUB, got %q", cfg.Display.Currency)
		}
		if cfg.UI.Accent != "#abc" {
			t.Errorf("expected accent #abc, got %q", cfg.UI.Accent)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadFrom(writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Display.Color != 0 || cfg.Display.NoColor {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "[display]\ncolor = 200\n"))
		if err == nil || !strings.Contains(err.Error(), "display.color") {
			t.Fatalf("expected display.color error, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "[display]\ncolour = 33\n"))
		if err == nil || !strings.Contains(err.Error(), "unknown key") {
			t.Fatalf("expected unknown key error, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := LoadFrom(writeConfig(t, "[display\n")); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{
		Display: DisplayConfig{Color: 93, Currency: "€", NoColor: true},
		UI:      UIConfig{Accent: "39"},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestSaveToOmitsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(path, &Config{}); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "" {
		t.Fatalf("expected empty file, got %q", data)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(path, &Config{Display: DisplayConfig{Color: 1}}); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected no file to be written")
	}
}

func TestCreateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advert", "config.toml")

	created, err := CreateDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected config to be created")
	}
	if _, err := LoadFrom(path); err != nil {
		t.Fatalf("default config should load: %v", err)
	}

	created, err = CreateDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected existing config to be kept")
	}
}

func TestResolveConfigPath(t *testing.T) {
	if got := ResolveConfigPath(" /tmp/x.toml "); got != "/tmp/x.toml" {
		t.Errorf("expected explicit path, got %q", got)
	}
	if got := ResolveConfigPath(""); got != DefaultPath() {
		t.Errorf("expected default path, got %q", got)
	}
}
