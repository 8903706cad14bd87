package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	cases := map[string]struct {
		want string
		ok   bool
	}{
		"":          {"", false},
		"default":   {"", false},
		"OFF":       {"", false},
		"33":        {"33", true},
		" 208\t":    {"208", true},
		"300":       {"", false},
		"-4":        {"", false},
		"#A78BFA":   {"#a78bfa", true},
		"#f0a":      {"#ff00aa", true},
		"#12345":    {"", false},
		"#ggg":      {"", false},
		"yellow":    {"", false},
		"#A78BFA00": {"", false},
	}

	for in, tc := range cases {
		got, ok := normalizeAccentColor(in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeAccentColor(%q) = %q, %v; want %q, %v", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestConfigureThemeResetsOnInvalidAccent(t *testing.T) {
	origAccent := Accent
	origAccentColor := accentColor
	t.Cleanup(func() {
		Accent = origAccent
		accentColor = origAccentColor
	})

	ConfigureTheme("#a78bfa")
	if got, ok := AccentColor(); !ok || got != "#a78bfa" {
		t.Fatalf("AccentColor() = %q, %v", got, ok)
	}

	ConfigureTheme("not-a-color")
	if got, ok := AccentColor(); ok {
		t.Fatalf("expected accent reset, got %q", got)
	}
	if FieldName("price") == "" {
		t.Fatal("expected field name to render with the default accent")
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "advert", "adverts"); got != "1 advert" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(0, "advert", "adverts"); got != "0 adverts" {
		t.Errorf("Count(0) = %q", got)
	}
}
