package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var newFields kvFlag

var newCmd = &cobra.Command{
	Use:   "new [title price]",
	Short: "Build a record from a title and price, or from --set fields",
	Long: `Builds a record without an input file.

With two arguments the record gets a title and a price. Otherwise every
--set key=value becomes a field, in flag order.

Examples:
  adv new "iPhone X" 100
  adv new --set title="Apple Mac" --set price=50000 \
    --set 'location={"address": "Lesnaya, 20"}'
  adv new --set class=dogs --fields`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected a title and a price, or no positional arguments")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			if len(newFields) > 0 {
				return handleError(ErrInvalidInput,
					errors.New("--set cannot be combined with a positional title and price"), "")
			}
			r, err := buildRecord(args[0], parseFlagValue(args[1]))
			if err != nil {
				return err
			}
			writeRecord(r, showFields)
			return nil
		}

		r, err := buildRecord(newFields.args()...)
		if err != nil {
			return err
		}
		writeRecord(r, showFields)
		return nil
	},
}

func init() {
	newCmd.Flags().Var(&newFields, "set", "Field as key=value (repeatable); values are parsed as JSON when possible")
	newCmd.Flags().BoolVar(&showFields, "fields", false, "Also list every normalized field")
	rootCmd.AddCommand(newCmd)
}
