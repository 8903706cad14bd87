package cli

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/advert/internal/config"
	"github.com/aidanlsb/advert/internal/ui"
)

var (
	configInitForce bool

	configSetColor    int
	configSetCurrency string
	configSetNoColor  bool
	configSetAccent   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the advert configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveConfigPath(configPath)

		var created bool
		var err error
		if configInitForce {
			err = config.WriteDefault(path)
			created = err == nil
		} else {
			created, err = config.CreateDefault(path)
		}
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": path, "created": created}, nil)
			return nil
		}
		if created {
			printf("%s\n", ui.Successf("Created %s", path))
		} else {
			printf("%s\n", ui.Warning(fmt.Sprintf("Config already exists at %s (use --force to reset)", path)))
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration, including environment overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":    resolvedConfigPath,
				"display": c.Display,
				"ui":      c.UI,
			}, nil)
			return nil
		}

		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return handleError(ErrInternal, err, "")
		}
		printf("# %s\n%s", resolvedConfigPath, buf.String())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update values in the config file",
	Long: `Updates the config file with the given flags, keeping other values.

Examples:
  adv config set --color 36
  adv config set --currency RUB --accent "#A78BFA"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolveConfigPath(configPath)

		// Start from the file alone so environment overrides are not persisted.
		c := &config.Config{}
		if loaded, err := config.LoadFrom(path); err == nil {
			c = loaded
		}

		flags := cmd.Flags()
		changed := false
		if flags.Changed("color") {
			c.Display.Color = configSetColor
			changed = true
		}
		if flags.Changed("currency") {
			c.Display.Currency = configSetCurrency
			changed = true
		}
		if flags.Changed("no-color") {
			c.Display.NoColor = configSetNoColor
			changed = true
		}
		if flags.Changed("accent") {
			c.UI.Accent = configSetAccent
			changed = true
		}
		if !changed {
			return handleError(ErrMissingArgument, fmt.Errorf("no values to set"), "Pass --color, --currency, --no-color or --accent")
		}

		if err := config.SaveTo(path, c); err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": path, "display": c.Display, "ui": c.UI}, nil)
			return nil
		}
		printf("%s\n", ui.Successf("Updated %s", path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configSetCmd.Flags().IntVar(&configSetColor, "color", 0, "SGR foreground code for display lines (30-37, 90-97; 0 = default)")
	configSetCmd.Flags().StringVar(&configSetCurrency, "currency", "", "Currency suffix for prices")
	configSetCmd.Flags().BoolVar(&configSetNoColor, "no-color", false, "Disable colored display lines")
	configSetCmd.Flags().StringVar(&configSetAccent, "accent", "", "Accent color for field names (ANSI code or hex)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
