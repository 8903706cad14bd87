package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/advert/internal/record"
	"github.com/aidanlsb/advert/internal/ui"
)

var (
	describeFormat string
	describeRaw    bool
	describeHTML   bool
)

var describeCmd = &cobra.Command{
	Use:   "describe <file|->",
	Short: "Print a markdown summary of a record",
	Long: `Builds a record and prints a markdown summary with every field.

On a terminal the markdown is rendered; otherwise (or with --raw) the
markdown source is printed. --html converts the summary to an HTML
fragment instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readInput(args[0], describeFormat)
		if err != nil {
			return err
		}
		r, err := buildRecord(m)
		if err != nil {
			return err
		}

		md := describeMarkdown(r, getConfig().Display.Currency)
		if describeHTML {
			html, err := ui.RenderHTML(md)
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"markdown": md, "html": html}, nil)
				return nil
			}
			printf("%s", html)
			return nil
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"markdown": md}, nil)
			return nil
		}
		if describeRaw || !stdoutIsTerminal() {
			printf("%s", md)
			return nil
		}

		rendered, err := ui.RenderMarkdown(md, newDisplayContext().AvailableWidth(ui.MarkdownRenderMargin))
		if err != nil {
			return handleError(ErrInternal, err, "Retry with --raw")
		}
		printf("%s", rendered)
		return nil
	},
}

// describeMarkdown renders a record as a markdown document: a heading with
// the title, the price, a field table and the location as a list.
func describeMarkdown(r *record.Record, currency string) string {
	if currency == "" {
		currency = record.Currency
	}

	var sb strings.Builder
	title, ok := r.Title()
	if !ok {
		title = "Untitled record"
	}
	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(title))
	fmt.Fprintf(&sb, "**Price:** %d %s\n", r.Price(), currency)

	rows := 0
	for _, f := range r.Fields() {
		switch f.Key {
		case record.FieldTitle, record.FieldPrice:
			continue
		}
		v := record.NewValue(f.Value)
		if _, isLoc := v.AsLocation(); isLoc {
			continue
		}
		if rows == 0 {
			sb.WriteString("\n| Field | Value |\n|---|---|\n")
		}
		fmt.Fprintf(&sb, "| `%s` | %s |\n", f.Key, escapeMarkdown(v.String()))
		rows++
	}

	if loc, ok := r.Location(); ok {
		sb.WriteString("\n## Location\n\n")
		for _, key := range loc.Keys() {
			v, _ := loc.Field(key)
			if items, ok := v.AsList(); ok {
				fmt.Fprintf(&sb, "- **%s**:\n", key)
				for _, item := range items {
					fmt.Fprintf(&sb, "  - %s\n", escapeMarkdown(item.String()))
				}
				continue
			}
			fmt.Fprintf(&sb, "- **%s**: %s\n", key, escapeMarkdown(v.String()))
		}
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "\n", " ")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func init() {
	describeCmd.Flags().StringVar(&describeFormat, "format", "", "Input format: json or yaml (default: from extension)")
	describeCmd.Flags().BoolVar(&describeRaw, "raw", false, "Print markdown source without rendering")
	describeCmd.Flags().BoolVar(&describeHTML, "html", false, "Convert the summary to HTML")
	rootCmd.AddCommand(describeCmd)
}
