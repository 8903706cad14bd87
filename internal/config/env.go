package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvColor    = "ADV_COLOR"
	EnvCurrency = "ADV_CURRENCY"
	EnvNoColor  = "NO_COLOR"
)

// Environ collects overrides from an optional dotenv file and the process
// environment. Process variables win over the file. A missing file is not
// an error.
func Environ(dotenvPath string) (map[string]string, error) {
	env := map[string]string{}
	if dotenvPath != "" {
		fileEnv, err := godotenv.Read(dotenvPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range []string{EnvColor, EnvCurrency, EnvNoColor} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overlays environment overrides onto c.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvColor]; ok && strings.TrimSpace(v) != "" {
		code, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
		c.Display.Color = code
	}
	if v, ok := env[EnvCurrency]; ok && v != "" {
		c.Display.Currency = v
	}
	// NO_COLOR disables color when present, regardless of value.
	if _, ok := env[EnvNoColor]; ok {
		c.Display.NoColor = true
	}
	return c.Validate()
}
