// Package decode turns JSON and YAML documents into ordered record mappings.
// Key order of the source document is preserved at every nesting level.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/advert/internal/record"
)

// ErrNotObject is returned when the top-level value is not a mapping.
var ErrNotObject = errors.New("top-level value is not an object")

// Format identifies a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected json or yaml)", name)
}

// File decodes the document at path. "-" reads JSON from stdin.
func File(path string) (*record.Map, error) {
	if path == "-" {
		return Reader(os.Stdin, FormatJSON)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Bytes(data, FormatForPath(path))
}

// Bytes decodes data in the given format.
func Bytes(data []byte, format Format) (*record.Map, error) {
	return Reader(bytes.NewReader(data), format)
}

// Reader decodes a document from r in the given format.
func Reader(r io.Reader, format Format) (*record.Map, error) {
	switch format {
	case FormatYAML:
		return YAML(r)
	case FormatJSON, "":
		return JSON(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// JSON decodes a single JSON object. Integral numbers become int64, other
// numbers float64.
func JSON(r io.Reader) (*record.Map, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := jsonValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: empty document")
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json: unexpected data after top-level value")
	}

	m, ok := v.(*record.Map)
	if !ok {
		return nil, fmt.Errorf("decode json: %w", ErrNotObject)
	}
	return m, nil
}

func jsonValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := &record.Map{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, truncated(err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := jsonValue(dec)
				if err != nil {
					return nil, truncated(err)
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, truncated(err)
			}
			return m, nil

		case '[':
			items := []interface{}{}
			for dec.More() {
				val, err := jsonValue(dec)
				if err != nil {
					return nil, truncated(err)
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, truncated(err)
			}
			return items, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)

	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		return t.Float64()

	default:
		// string, bool or nil
		return t, nil
	}
}

// truncated turns a clean EOF inside a container into io.ErrUnexpectedEOF.
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// YAML decodes a single YAML document whose root is a mapping. An empty
// document yields an empty mapping.
func YAML(r io.Reader) (*record.Map, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &record.Map{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &record.Map{}, nil
		}
		node = node.Content[0]
	}

	v, err := yamlValue(node)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	m, ok := v.(*record.Map)
	if !ok {
		return nil, fmt.Errorf("decode yaml: %w", ErrNotObject)
	}
	return m, nil
}

func yamlValue(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := &record.Map{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(n.Content[i].Value, val)
		}
		return m, nil

	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		return items, nil

	case yaml.AliasNode:
		return yamlValue(n.Alias)

	case yaml.ScalarNode:
		// Timestamps stay as written.
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
}
