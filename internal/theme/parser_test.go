package theme

import (
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `Name: custom
PinFill: #112233
PinHighlight: #445566AA
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Expected name 'custom', got %q", th.Name)
	}
	if th.PinFill.R != 0x11 || th.PinFill.G != 0x22 || th.PinFill.B != 0x33 || th.PinFill.A != 255 {
		t.Errorf("Unexpected PinFill: %+v", th.PinFill)
	}
	if th.PinHighlight.A != 0xAA {
		t.Errorf("Expected alpha 0xAA, got %d", th.PinHighlight.A)
	}
	// Untouched keys keep defaults.
	if th.PanelBackground != Default().PanelBackground {
		t.Errorf("PanelBackground should keep its default")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("PinFill: red\n")); err == nil {
		t.Fatal("expected error for non-hex color")
	}
	if _, err := Parse(strings.NewReader("PinFill: #1234\n")); err == nil {
		t.Fatal("expected error for short hex color")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := NewLoader()
	for _, name := range []string{"default", "dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("load embedded theme %s: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("theme %s reports name %q", name, th.Name)
		}
	}
}

func TestLoadUnknownTheme(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	if _, err := l.Load("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
