package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders a record summary written in markdown for terminal
// display.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

// markdownStyle starts from glamour's dark theme and swaps in the accent for
// headings. Only fields replaced wholesale are changed, so the shared
// built-in config is never mutated through its pointers.
func markdownStyle() ansi.StyleConfig {
	accent := defaultAccent
	if color, ok := AccentColor(); ok {
		accent = color
	}

	style := styles.DarkStyleConfig
	style.Document.Margin = ptr(uint(MarkdownRenderMargin))
	style.Document.Color = nil

	style.Heading.Color = ptr(accent)
	style.Heading.Bold = ptr(true)
	style.H1 = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "# "}}
	style.H2 = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "## "}}

	style.Code.Color = ptr("8")
	style.Code.BackgroundColor = nil
	style.Code.Prefix = "`"
	style.Code.Suffix = "`"

	style.Table.CenterSeparator = ptr("│")
	style.Table.ColumnSeparator = ptr("│")
	style.Table.RowSeparator = ptr("─")
	return style
}

func ptr[T any](v T) *T { return &v }
