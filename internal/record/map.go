package record

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value interface{}
}

// Map is an insertion-ordered mapping from string keys to arbitrary values.
// It is the input shape for records and the backing store for locations.
// The zero value is an empty map ready to use.
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap builds a Map from alternating key/value arguments.
// Panics if a key is not a string or the argument count is odd.
func NewMap(kv ...interface{}) *Map {
	if len(kv)%2 != 0 {
		panic("record.NewMap: odd number of arguments")
	}
	m := &Map{}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("record.NewMap: key is not a string")
		}
		m.Set(key, kv[i+1])
	}
	return m
}

// MapFromGo converts a plain Go map into a Map. Go maps carry no order, so
// keys are sorted to keep the result deterministic. Nested maps are
// converted as well.
func MapFromGo(src map[string]interface{}) *Map {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &Map{}
	for _, k := range keys {
		m.Set(k, normalizeNested(src[k]))
	}
	return m
}

func normalizeNested(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return MapFromGo(val)
	case Map:
		return val.Clone()
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeNested(item)
		}
		return out
	default:
		return v
	}
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key string, value interface{}) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (interface{}, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Clone returns a deep copy. Nested maps and slices are copied so the clone
// shares no mutable state with m.
func (m *Map) Clone() *Map {
	out := &Map{}
	if m == nil {
		return out
	}
	for _, e := range m.entries {
		out.Set(e.Key, cloneValue(e.Value))
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case Map:
		return val.Clone()
	case map[string]interface{}:
		return MapFromGo(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, e := range m.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := marshalValue(e.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns the textual form of the map: compact JSON in insertion
// order, with non-ASCII text left as is.
func (m *Map) String() string {
	data, err := m.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

// marshalValue encodes v without HTML escaping.
func marshalValue(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case *Map:
		return val.MarshalJSON()
	case Map:
		return val.MarshalJSON()
	case *Location:
		return val.MarshalJSON()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
