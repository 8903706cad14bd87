package record

// Location is the nested object built when a record's "location" field
// holds a mapping. Every key of the source mapping is readable as a field,
// and the mapping itself is kept for display.
type Location struct {
	source *Map
}

// NewLocation wraps a copy of m.
func NewLocation(m *Map) *Location {
	return &Location{source: m.Clone()}
}

// Field returns the value stored under name.
func (l *Location) Field(name string) (Value, bool) {
	if l == nil {
		return Value{}, false
	}
	v, ok := l.source.Get(name)
	if !ok {
		return Value{}, false
	}
	return NewValue(v), true
}

// Keys returns the field names in source order.
func (l *Location) Keys() []string {
	if l == nil {
		return nil
	}
	return l.source.Keys()
}

// Address returns the "address" field when it is a string.
func (l *Location) Address() (string, bool) {
	v, ok := l.Field("address")
	if !ok {
		return "", false
	}
	return v.AsString()
}

// MetroStations returns the "metro_stations" field when it is a list of
// strings.
func (l *Location) MetroStations() ([]string, bool) {
	v, ok := l.Field("metro_stations")
	if !ok {
		return nil, false
	}
	return v.AsStrings()
}

// Raw returns a copy of the source mapping.
func (l *Location) Raw() *Map {
	if l == nil {
		return &Map{}
	}
	return l.source.Clone()
}

// String returns the textual form of the source mapping.
func (l *Location) String() string {
	if l == nil {
		return "{}"
	}
	return l.source.String()
}

// MarshalJSON implements json.Marshaler.
func (l *Location) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	return l.source.MarshalJSON()
}
