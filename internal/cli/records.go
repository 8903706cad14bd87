package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aidanlsb/advert/internal/decode"
	"github.com/aidanlsb/advert/internal/logger"
	"github.com/aidanlsb/advert/internal/record"
	"github.com/aidanlsb/advert/internal/ui"
)

// stdin is read when a command is given "-" as its input file.
var stdin io.Reader = os.Stdin

// recordData is the JSON shape of a built record.
type recordData struct {
	Display string         `json:"display"`
	Slug    string         `json:"slug,omitempty"`
	Price   int64          `json:"price"`
	Fields  *record.Record `json:"fields"`
}

func recordResult(r *record.Record) recordData {
	opts := displayOptions()
	opts.Plain = true
	return recordData{
		Display: record.DisplayWith(r, opts),
		Slug:    r.Slug(),
		Price:   r.Price(),
		Fields:  r,
	}
}

// buildRecord wraps record.New with logging and CLI error mapping.
func buildRecord(args ...interface{}) (*record.Record, error) {
	r, err := record.New(args...)
	if err != nil {
		logger.L().Debug("record.rejected", "error", err)
		return nil, recordError(err)
	}
	logger.L().Debug("record.built", "fields", r.Keys(), "price", r.Price())
	return r, nil
}

func recordError(err error) error {
	var ve *record.ValidationError
	switch {
	case errors.As(err, &ve):
		return handleErrorWithDetails(ErrValidationFailed, err, "Use a non-negative integer price",
			map[string]interface{}{"field": ve.Field, "value": ve.Value})
	case errors.Is(err, record.ErrUnsupportedArguments):
		return handleError(ErrInvalidInput, err, "")
	default:
		return handleError(ErrInternal, err, "")
	}
}

// readInput decodes path ("-" for stdin). An empty format is inferred from
// the file extension, defaulting to JSON.
func readInput(path, format string) (*record.Map, error) {
	var f decode.Format
	if format != "" {
		parsed, err := decode.ParseFormat(format)
		if err != nil {
			return nil, handleError(ErrInvalidInput, err, "")
		}
		f = parsed
	}

	if path == "-" {
		if f == "" {
			f = decode.FormatJSON
		}
		m, err := decode.Reader(stdin, f)
		if err != nil {
			return nil, handleError(ErrInvalidInput, err, "")
		}
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, handleError(ErrFileNotFound, fmt.Errorf("file not found: %s", path), "")
		}
		return nil, handleError(ErrFileReadError, err, "")
	}
	if f == "" {
		f = decode.FormatForPath(path)
	}
	m, err := decode.Bytes(data, f)
	if err != nil {
		return nil, handleError(ErrInvalidInput, fmt.Errorf("%s: %w", path, err), "")
	}
	logger.L().Debug("input.decoded", "path", path, "format", f, "keys", m.Len())
	return m, nil
}

// writeRecord prints a record in the current output mode.
func writeRecord(r *record.Record, withFields bool) {
	if isJSONOutput() {
		outputSuccess(recordResult(r), &Meta{Count: r.Len()})
		return
	}

	printf("%s\n", record.DisplayWith(r, displayOptions()))
	if withFields {
		printf("\n%s", fieldTable(r, newDisplayContext().AvailableWidth(0)))
	}
}

// fieldTable lists normalized fields in input order; location keys are
// indented beneath "location".
func fieldTable(r *record.Record, width int) string {
	color := useColor()
	label := func(name string, nested bool) string {
		if !color {
			return name
		}
		if nested {
			return ui.Hint(name)
		}
		return ui.FieldName(name)
	}

	table := ui.NewTable(2)
	table.SetMaxWidth(width)
	for _, f := range r.Fields() {
		v := record.NewValue(f.Value)
		if loc, ok := v.AsLocation(); ok {
			table.AddRow(label(f.Key, false), "")
			for _, key := range loc.Keys() {
				lv, _ := loc.Field(key)
				table.AddRow(label("  "+key, true), lv.String())
			}
			continue
		}
		table.AddRow(label(f.Key, false), v.String())
	}
	if !r.HasPrice() {
		table.AddRow(label(record.FieldPrice, false), "0 (default)")
	}
	return table.String()
}
