package decode

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aidanlsb/advert/internal/record"
)

const lessonJSON = `{
	"title": "python", "price": 1000,
	"location": {
		"address": "Forest St, 7",
		"metro_stations": ["Belorusskaya"]
	}
}`

func TestJSONPreservesKeyOrder(t *testing.T) {
	m, err := JSON(strings.NewReader(`{"title": "Corgi", "price": 10000, "class": "dogs", "location": {"z": 1, "a": 2}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"title", "price", "class", "location"}) {
		t.Fatalf("unexpected key order %v", got)
	}
	loc, _ := m.Get("location")
	if got := loc.(*record.Map).Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Fatalf("unexpected nested key order %v", got)
	}
}

func TestJSONNumbers(t *testing.T) {
	m, err := JSON(strings.NewReader(`{"a": 1000, "b": 10.5, "c": -3, "d": true, "e": null, "f": "x"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]interface{}{
		"a": int64(1000),
		"b": 10.5,
		"c": int64(-3),
		"d": true,
		"e": nil,
		"f": "x",
	}
	for key, expected := range want {
		got, ok := m.Get(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if got != expected {
			t.Errorf("%s: expected %#v, got %#v", key, expected, got)
		}
	}
}

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		notObject bool
	}{
		{name: "empty", input: ""},
		{name: "array", input: `[1, 2]`, notObject: true},
		{name: "scalar", input: `"title"`, notObject: true},
		{name: "truncated", input: `{"title": "x"`},
		{name: "trailing", input: `{"title": "x"} {}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.notObject && !errors.Is(err, ErrNotObject) {
				t.Fatalf("expected ErrNotObject, got %v", err)
			}
		})
	}
}

func TestJSONFeedsRecord(t *testing.T) {
	m, err := JSON(strings.NewReader(lessonJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := record.New(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Price() != 1000 {
		t.Errorf("expected price 1000, got %d", r.Price())
	}
	loc, ok := r.Location()
	if !ok {
		t.Fatalf("expected location")
	}
	if loc.String() != `{"address":"Forest St, 7","metro_stations":["Belorusskaya"]}` {
		t.Errorf("unexpected location %s", loc)
	}
}

func TestYAML(t *testing.T) {
	input := `
title: Corgi
price: 10000
class: dogs
listed: 2024-05-01
location:
  address: Tishkovo, 25
  metro_stations: [Belorusskaya, Savyolovskaya]
`
	m, err := YAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"title", "price", "class", "listed", "location"}) {
		t.Fatalf("unexpected key order %v", got)
	}
	if price, _ := m.Get("price"); price != int64(10000) {
		t.Errorf("expected int64 price, got %#v", price)
	}
	if listed, _ := m.Get("listed"); listed != "2024-05-01" {
		t.Errorf("expected timestamp kept as text, got %#v", listed)
	}

	r, err := record.New(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Has("class_") {
		t.Errorf("expected class_ field, got %v", r.Keys())
	}
}

func TestYAMLEmptyAndNonObject(t *testing.T) {
	m, err := YAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty mapping")
	}

	_, err = YAML(strings.NewReader("- a\n- b\n"))
	if !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
}

func TestFileDetectsFormat(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "lesson.json")
	yamlPath := filepath.Join(dir, "lesson.yml")
	if err := os.WriteFile(jsonPath, []byte(lessonJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte("title: python\nprice: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		m, err := File(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if title, _ := m.Get("title"); title != "python" {
			t.Errorf("%s: expected title python, got %v", path, title)
		}
	}

	if _, err := File(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "JSON", " yaml ", "yml"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", name, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Errorf("expected error for toml")
	}
}
