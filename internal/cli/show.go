package cli

import (
	"github.com/spf13/cobra"
)

var (
	showFields bool
	showFormat string
)

var showCmd = &cobra.Command{
	Use:   "show <file|->",
	Short: "Build a record from a JSON or YAML file and display it",
	Long: `Decodes the file (or stdin for "-") and prints the record's display line.

Examples:
  adv show lesson.json
  adv show corgi.yaml --fields
  cat lesson.json | adv show - --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readInput(args[0], showFormat)
		if err != nil {
			return err
		}
		r, err := buildRecord(m)
		if err != nil {
			return err
		}
		writeRecord(r, showFields)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showFields, "fields", false, "Also list every normalized field")
	showCmd.Flags().StringVar(&showFormat, "format", "", "Input format: json or yaml (default: from extension)")
	rootCmd.AddCommand(showCmd)
}
