package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/advert/internal/decode"
	"github.com/aidanlsb/advert/internal/record"
)

// kvFlag collects repeated --set key=value flags as named record fields.
type kvFlag []record.KV

var _ pflag.Value = (*kvFlag)(nil)

func (f *kvFlag) String() string {
	parts := make([]string, len(*f))
	for i, kv := range *f {
		parts[i] = fmt.Sprintf("%s=%v", kv.Key, kv.Value)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Set parses key=value. The value is decoded as JSON when it is valid JSON
// (numbers, objects, lists, true/false/null) and kept as text otherwise.
func (f *kvFlag) Set(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	*f = append(*f, record.KV{Key: key, Value: parseFlagValue(raw)})
	return nil
}

func (f *kvFlag) Type() string {
	return "key=value"
}

// args converts the collected fields into arguments for record.New.
func (f kvFlag) args() []interface{} {
	out := make([]interface{}, len(f))
	for i, kv := range f {
		out[i] = kv
	}
	return out
}

// parseFlagValue keeps the key order of JSON objects.
func parseFlagValue(raw string) interface{} {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if m, err := decode.JSON(strings.NewReader(raw)); err == nil {
			return m
		}
		return raw
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}
	return v
}
