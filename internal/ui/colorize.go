package ui

import (
	"strconv"

	"github.com/muesli/termenv"
)

// ColorYellow is the SGR foreground code records are displayed in.
const ColorYellow = 33

// Colorize wraps text in bold plus the SGR foreground color code
// (30-37 or 90-97), followed by a reset. The text itself is written
// unchanged. Unknown codes leave text unstyled.
func Colorize(text string, code int) string {
	color, ok := sgrColor(code)
	if !ok {
		return text
	}
	return termenv.String(text).Bold().Foreground(color).String()
}

// ValidColorCode reports whether code is a supported SGR foreground code.
func ValidColorCode(code int) bool {
	_, ok := sgrColor(code)
	return ok
}

// sgrColor maps an SGR foreground code onto a 16-color ANSI color.
func sgrColor(code int) (termenv.Color, bool) {
	switch {
	case code >= 30 && code <= 37:
		return termenv.ANSI.Color(strconv.Itoa(code - 30)), true
	case code >= 90 && code <= 97:
		return termenv.ANSI.Color(strconv.Itoa(code - 90 + 8)), true
	}
	return nil, false
}
