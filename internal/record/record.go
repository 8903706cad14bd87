// Package record builds records with dynamically named fields from loosely
// structured mappings.
//
// A record mirrors the keys of its input mapping, with three normalization
// rules applied per key:
//   - "price" must be a non-negative integer and is exposed through Price,
//     which defaults to 0 when the input has no price.
//   - "location" holding a mapping becomes a nested *Location.
//   - keys that are reserved words get ReservedSuffix appended ("class" ->
//     "class_").
//
// Construction is all-or-nothing: on error no record is returned.
package record

import (
	"bytes"
	"encoding/json"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/aidanlsb/advert/internal/ui"
)

// ColorCode is the SGR foreground code used to display records.
const ColorCode = ui.ColorYellow

// Well-known field names.
const (
	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldLocation = "location"
)

// KV is one named field argument for New, the counterpart of a keyword
// argument.
type KV struct {
	Key   string
	Value interface{}
}

// Record is an ordered set of normalized fields built from one input.
// Records are not modified after construction.
type Record struct {
	fields *Map
	price  *int64
}

// New builds a record from one of the supported argument shapes:
//
//	New()                                  // empty record
//	New(title string, price)               // title and price
//	New(m *Map) / New(map[string]any{...}) // a single mapping
//	New(KV{"title", "Corgi"}, KV{...})     // named fields
//
// Any other shape fails with ErrUnsupportedArguments.
func New(args ...interface{}) (*Record, error) {
	switch len(args) {
	case 0:
		return FromMap(nil)
	case 1:
		switch a := args[0].(type) {
		case *Map:
			return FromMap(a)
		case Map:
			return FromMap(&a)
		case map[string]interface{}:
			return FromMap(MapFromGo(a))
		}
	case 2:
		if title, ok := args[0].(string); ok {
			if _, isKV := args[1].(KV); !isKV {
				return FromMap(NewMap(FieldTitle, title, FieldPrice, args[1]))
			}
		}
	}

	kvs := make([]KV, 0, len(args))
	for _, a := range args {
		kv, ok := a.(KV)
		if !ok {
			return nil, unsupportedArgs(args)
		}
		kvs = append(kvs, kv)
	}
	return FromFields(kvs...)
}

// FromPair builds a record holding only a title and a price.
// The price is validated the same way as mapping input.
func FromPair(title string, price int64) (*Record, error) {
	return FromMap(NewMap(FieldTitle, title, FieldPrice, price))
}

// FromFields collects named fields into a mapping, in argument order, and
// builds a record from it. A repeated key keeps its first position and its
// last value.
func FromFields(kvs ...KV) (*Record, error) {
	m := &Map{}
	for _, kv := range kvs {
		m.Set(kv.Key, kv.Value)
	}
	return FromMap(m)
}

// FromMap builds a record from a mapping. A nil mapping is treated as empty.
func FromMap(m *Map) (*Record, error) {
	r := &Record{fields: &Map{}}

	for _, e := range m.Clone().Entries() {
		switch {
		case e.Key == FieldPrice:
			price, err := validatePrice(e.Value)
			if err != nil {
				return nil, err
			}
			r.price = &price
			r.fields.Set(FieldPrice, price)

		case e.Key == FieldLocation && isMapping(e.Value):
			r.fields.Set(FieldLocation, NewLocation(toMap(e.Value)))

		default:
			r.fields.Set(FieldName(e.Key), normalize(e.Value))
		}
	}

	return r, nil
}

func validatePrice(v interface{}) (int64, error) {
	price, ok := toInt64(v)
	if !ok {
		return 0, &ValidationError{Field: FieldPrice, Message: "price must be an integer", Value: v}
	}
	if price < 0 {
		return 0, &ValidationError{Field: FieldPrice, Message: "price must be non-negative", Value: v}
	}
	return price, nil
}

func isMapping(v interface{}) bool {
	switch v.(type) {
	case *Map, Map, map[string]interface{}:
		return true
	}
	return false
}

func toMap(v interface{}) *Map {
	switch m := v.(type) {
	case *Map:
		return m
	case Map:
		return &m
	case map[string]interface{}:
		return MapFromGo(m)
	}
	return &Map{}
}

// Title returns the record's title. The second result is false when the
// record has no title field at all.
func (r *Record) Title() (string, bool) {
	v, ok := r.Field(FieldTitle)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Price returns the record's price, or 0 when none was supplied.
func (r *Record) Price() int64 {
	if r == nil || r.price == nil {
		return 0
	}
	return *r.price
}

// HasPrice reports whether the input carried a price.
func (r *Record) HasPrice() bool {
	return r != nil && r.price != nil
}

// Location returns the nested location, if the input's "location" field
// was a mapping.
func (r *Record) Location() (*Location, bool) {
	v, ok := r.Field(FieldLocation)
	if !ok {
		return nil, false
	}
	return v.AsLocation()
}

// Field returns the value of a normalized field. Reserved-word keys must be
// looked up by their suffixed name ("class_").
func (r *Record) Field(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.fields.Get(name)
	if !ok {
		return Value{}, false
	}
	return Value{value: v}, true
}

// Has reports whether the record has a field with the given normalized name.
func (r *Record) Has(name string) bool {
	_, ok := r.Field(name)
	return ok
}

// Keys returns the normalized field names in input order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return r.fields.Keys()
}

// Fields returns the normalized fields in input order.
func (r *Record) Fields() []Entry {
	if r == nil {
		return nil
	}
	return r.fields.Entries()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return r.fields.Len()
}

// Slug returns a URL-safe identifier derived from the title, or "" when the
// record has no title.
func (r *Record) Slug() string {
	title, ok := r.Title()
	if !ok {
		return ""
	}
	s := goslug.Make(title)
	if s == "" {
		s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	}
	return s
}

// ColorCode implements Displayable.
func (r *Record) ColorCode() int {
	return ColorCode
}

// String returns the display form of the record.
func (r *Record) String() string {
	return Display(r)
}

// MarshalJSON writes the fields in input order. A record without a price
// still reports "price": 0.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	data, err := r.fields.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if r.HasPrice() {
		return data, nil
	}

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	if r.fields.Len() > 0 {
		buf.WriteByte(',')
	}
	price, _ := json.Marshal(FieldPrice)
	buf.Write(price)
	buf.WriteString(":0}")
	return buf.Bytes(), nil
}
