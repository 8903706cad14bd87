package ui

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts markdown to an HTML fragment. Raw HTML in the input is
// omitted.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
