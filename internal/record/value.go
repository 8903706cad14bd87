package record

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value wraps a single field value of a record.
// Construct with NewValue; the zero Value is null.
type Value struct {
	value interface{}
}

// NewValue normalizes v into a Value. Integer kinds collapse to int64,
// float32 widens to float64, and Go maps become ordered *Map values.
func NewValue(v interface{}) Value {
	return Value{value: normalize(v)}
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint:
		if uint64(val) <= math.MaxInt64 {
			return int64(val)
		}
		return float64(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
		return float64(val)
	case float32:
		return float64(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]interface{}:
		return MapFromGo(val)
	case Map:
		return val.Clone()
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case []string:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	default:
		return v
	}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.value == nil
}

// AsString returns the value as a string, if possible.
func (v Value) AsString() (string, bool) {
	s, ok := v.value.(string)
	return s, ok
}

// AsInt returns the value as an integer. Whole floats count as integers
// since JSON decoders may produce them for integral numbers.
func (v Value) AsInt() (int64, bool) {
	return toInt64(v.value)
}

// AsFloat returns the value as a float64, if it is numeric.
func (v Value) AsFloat() (float64, bool) {
	switch n := v.value.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AsBool returns the value as a boolean, if possible.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.value.(bool)
	return b, ok
}

// AsList returns the value as a list of values, if possible.
func (v Value) AsList() ([]Value, bool) {
	items, ok := v.value.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = Value{value: item}
	}
	return out, true
}

// AsStrings returns the value as a list of strings. Fails if any item is
// not a string.
func (v Value) AsStrings() ([]string, bool) {
	items, ok := v.value.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// AsMap returns the value as an ordered map, if possible.
func (v Value) AsMap() (*Map, bool) {
	m, ok := v.value.(*Map)
	return m, ok
}

// AsLocation returns the value as a nested location, if possible.
func (v Value) AsLocation() (*Location, bool) {
	l, ok := v.value.(*Location)
	return l, ok
}

// Raw returns the underlying value.
func (v Value) Raw() interface{} {
	return v.value
}

// String renders the value for display.
func (v Value) String() string {
	switch val := v.value.(type) {
	case nil:
		return "null"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case []interface{}:
		data, err := marshalValue(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return marshalValue(v.value)
}

// toInt64 reports whether v is integral and returns it as int64.
func toInt64(v interface{}) (int64, bool) {
	switch n := normalize(v).(type) {
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n >= 1<<63 || n < -1<<63 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
