package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 100

// DisplayContext holds display parameters for one output stream.
type DisplayContext struct {
	TermWidth int  // detected or fallback terminal width
	IsTTY     bool // whether the stream is a terminal
	Color     bool // whether styled output should be emitted
}

// NewDisplayContext inspects w and decides width and color. Writers that
// are not terminal files get DefaultTermWidth and no color. NO_COLOR and
// noColor both disable color.
func NewDisplayContext(w io.Writer, noColor bool) *DisplayContext {
	width := DefaultTermWidth
	isTTY := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := f.Fd()
		isTTY = term.IsTerminal(fd)
		if isTTY {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				width = tw
			}
		}
	}

	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return &DisplayContext{
		TermWidth: width,
		IsTTY:     isTTY,
		Color:     isTTY && !noColor && !noColorEnv,
	}
}

// AvailableWidth returns the usable width after accounting for left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}
