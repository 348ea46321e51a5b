package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the theme files compiled into the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the color palette for the viewer UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Canvas backdrop behind the image
	Foreground color.RGBA // Main text color

	// Header toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Pins
	PinFill      color.RGBA // Marker circle fill
	PinText      color.RGBA // Marker number
	PinHighlight color.RGBA // Halo drawn while a pin is highlighted

	// Comment panel
	PanelBackground    color.RGBA
	PanelText          color.RGBA
	PanelEntrySelected color.RGBA
	PanelBorder        color.RGBA

	// Comment editor popup
	EditorBackground color.RGBA
	EditorText       color.RGBA
	EditorBorder     color.RGBA

	// Canvas checkerboard shown where the image does not cover
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		PinFill:               color.RGBA{220, 50, 47, 255},
		PinText:               color.RGBA{255, 255, 255, 255},
		PinHighlight:          color.RGBA{255, 200, 0, 255},
		PanelBackground:       color.RGBA{240, 240, 240, 255},
		PanelText:             color.RGBA{0, 0, 0, 255},
		PanelEntrySelected:    color.RGBA{200, 215, 240, 255},
		PanelBorder:           color.RGBA{120, 120, 120, 255},
		EditorBackground:      color.RGBA{255, 255, 255, 240},
		EditorText:            color.RGBA{0, 0, 0, 255},
		EditorBorder:          color.RGBA{0, 0, 0, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
	}
}
