package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/pinview/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool // Notify when a pin comment is saved
	Copy bool // Notify when a comment is copied to the clipboard
}

// Viewer holds the defaults applied when a viewer window opens.
type Viewer struct {
	Annotate bool // Start with annotation mode enabled
	Panel    bool // Start with the comment panel open
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Viewer Viewer
	Notify Notify
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Empty allows fallback to Env/Default
		Viewer: Viewer{
			Annotate: true,
			Panel:    true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	sb.WriteString("\n")

	// Viewer section
	sb.WriteString("[viewer]\n")
	fmt.Fprintf(&sb, "annotate = %v\n", c.Viewer.Annotate)
	fmt.Fprintf(&sb, "panel = %v\n", c.Viewer.Panel)
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Themes sections, sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", toHex(t.Foreground))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", toHex(t.ButtonBorder))
		fmt.Fprintf(&sb, "PinFill: %s\n", toHex(t.PinFill))
		fmt.Fprintf(&sb, "PinText: %s\n", toHex(t.PinText))
		fmt.Fprintf(&sb, "PinHighlight: %s\n", toHex(t.PinHighlight))
		fmt.Fprintf(&sb, "PanelBackground: %s\n", toHex(t.PanelBackground))
		fmt.Fprintf(&sb, "PanelText: %s\n", toHex(t.PanelText))
		fmt.Fprintf(&sb, "PanelEntrySelected: %s\n", toHex(t.PanelEntrySelected))
		fmt.Fprintf(&sb, "PanelBorder: %s\n", toHex(t.PanelBorder))
		fmt.Fprintf(&sb, "EditorBackground: %s\n", toHex(t.EditorBackground))
		fmt.Fprintf(&sb, "EditorText: %s\n", toHex(t.EditorText))
		fmt.Fprintf(&sb, "EditorBorder: %s\n", toHex(t.EditorBorder))
		fmt.Fprintf(&sb, "CheckerLight: %s\n", toHex(t.CheckerLight))
		fmt.Fprintf(&sb, "CheckerDark: %s\n", toHex(t.CheckerDark))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
