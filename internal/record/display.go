package record

import (
	"fmt"
	"reflect"

	"github.com/aidanlsb/advert/internal/ui"
)

// Currency is appended to displayed prices.
const Currency = "₽"

// Displayable is anything with a title, a price and a display color.
type Displayable interface {
	// Title returns false when the value has no title at all.
	Title() (string, bool)
	Price() int64
	// ColorCode is an SGR foreground code, e.g. 33 for yellow.
	ColorCode() int
}

// DisplayOptions tune DisplayWith. Zero values mean defaults.
type DisplayOptions struct {
	Currency  string
	ColorCode int
	Plain     bool
}

// Display renders "<title> | <price> ₽" in d's color.
// Values without a title fall back to GenericString.
func Display(d Displayable) string {
	return DisplayWith(d, DisplayOptions{})
}

// DisplayWith is Display with overrides for currency and color.
func DisplayWith(d Displayable, opts DisplayOptions) string {
	title, ok := d.Title()
	if !ok {
		return GenericString(d)
	}

	currency := opts.Currency
	if currency == "" {
		currency = Currency
	}
	line := fmt.Sprintf("%s | %d %s", title, d.Price(), currency)
	if opts.Plain {
		return line
	}

	code := opts.ColorCode
	if code == 0 {
		code = d.ColorCode()
	}
	return ui.Colorize(line, code)
}

// GenericString is the fallback representation: the dynamic type and, for
// pointers, the address.
func GenericString(v interface{}) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return fmt.Sprintf("<%T at %p>", v, v)
	}
	return fmt.Sprintf("<%T>", v)
}
