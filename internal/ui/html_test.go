package ui

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	out, err := RenderHTML("# Corgi\n\n| Field | Value |\n|---|---|\n| `color` | red |\n")
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	for _, want := range []string{"<h1>Corgi</h1>", "<table>", "<code>color</code>", "<td>red</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderHTMLOmitsRawHTML(t *testing.T) {
	t.Parallel()

	out, err := RenderHTML("<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html should be omitted, got %q", out)
	}
}
