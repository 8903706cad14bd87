// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/advert/internal/config"
	"github.com/aidanlsb/advert/internal/logger"
	"github.com/aidanlsb/advert/internal/record"
	"github.com/aidanlsb/advert/internal/ui"
)

var (
	// Global flags
	configPath  string
	dotenvPath  string
	noColorFlag bool
	debugFlag   bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config

	// stdout receives all command output; tests replace it.
	stdout io.Writer = os.Stdout

	stdoutIsTerminal = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adv",
	Short: "adv - shape loosely structured adverts into records",
	Long: `adv reads JSON or YAML adverts and builds records from them.

Field names mirror the input keys. A "price" must be a non-negative integer
and defaults to 0, a "location" object becomes a nested location, and keys
that are reserved words gain a trailing underscore ("class" -> "class_").`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(logger.Config{Debug: debugFlag, Output: os.Stderr})

		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version", "init", "set":
			return nil
		}

		if err := loadConfig(); err != nil {
			return handleError(ErrConfigInvalid, err, "Fix the file or run 'adv config init --force'")
		}
		return nil
	},
}

// Execute runs the CLI. Errors already written as JSON are not printed
// again.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dotenvPath, "env-file", ".env", "Dotenv file with ADV_* overrides")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log debug information to stderr")
}

// loadConfig resolves the config file, applies environment overrides and
// configures the theme. A missing default config is not an error; a missing
// explicit --config is.
func loadConfig() error {
	resolvedConfigPath = config.ResolveConfigPath(configPath)

	loaded := &config.Config{}
	if _, err := os.Stat(resolvedConfigPath); err == nil {
		loaded, err = config.LoadFrom(resolvedConfigPath)
		if err != nil {
			return err
		}
	} else if strings.TrimSpace(configPath) != "" {
		return fmt.Errorf("config not found: %s", resolvedConfigPath)
	}

	env, err := config.Environ(dotenvPath)
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnv(env); err != nil {
		return err
	}

	ui.ConfigureTheme(loaded.UI.Accent)
	cfg = loaded
	logger.L().Debug("config.loaded", "path", resolvedConfigPath, "color", cfg.Display.Color)
	return nil
}

// getConfig returns the loaded config, or defaults before loading.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// useColor reports whether styled output should be written to stdout.
func useColor() bool {
	return !noColorFlag && !getConfig().Display.NoColor && stdoutIsTerminal()
}

// displayOptions maps the config onto record display options.
func displayOptions() record.DisplayOptions {
	c := getConfig()
	return record.DisplayOptions{
		Currency:  c.Display.Currency,
		ColorCode: c.Display.Color,
		Plain:     !useColor(),
	}
}

func newDisplayContext() *ui.DisplayContext {
	return ui.NewDisplayContext(stdout, !useColor())
}
