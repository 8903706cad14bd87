package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table renders rows as left-aligned columns without borders.
// Widths are measured on visible cells, so styled text aligns correctly.
type Table struct {
	rows       [][]string
	colWidths  []int
	colPadding int
	maxWidth   int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := ansi.StringWidth(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// SetMaxWidth truncates each rendered line to width cells. Zero disables it.
func (t *Table) SetMaxWidth(width int) {
	t.maxWidth = width
}

// String renders the table as a string
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)

	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString(padding)
			}
			line.WriteString(cell)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", t.colWidths[i]-ansi.StringWidth(cell)))
			}
		}
		out := line.String()
		if t.maxWidth > 0 && ansi.StringWidth(out) > t.maxWidth {
			out = ansi.Truncate(out, t.maxWidth, "…")
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}

	return sb.String()
}
