package ui

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/pinview/internal/annotation"
	"github.com/example/pinview/internal/interact"
)

const (
	headerHeight = 24
	bottomHeight = 24
	panelWidth   = 240

	// pinRadius is the marker circle radius, also the click target size.
	pinRadius = 9

	panelHeaderHeight = 20
	entryHeight       = 40
)

// button is a labelled clickable region in the header or bottom bar. name
// keys into the action registry.
type button struct {
	name  string
	label string
	rect  image.Rectangle
}

func measureLabel(label string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(label).Ceil()
}

// headerRect returns the toolbar strip across the top of the window.
func headerRect(w int) image.Rectangle {
	return image.Rect(0, 0, w, headerHeight)
}

// bottomRect returns the shortcut strip across the bottom of the window.
func bottomRect(w, h int) image.Rectangle {
	return image.Rect(0, h-bottomHeight, w, h)
}

// panelRect returns the comment panel area, empty when the panel is closed.
func panelRect(w, h int, open bool) image.Rectangle {
	if !open {
		return image.Rectangle{}
	}
	return image.Rect(w-panelWidth, headerHeight, w, h-bottomHeight)
}

// canvasRect returns the image area between the chrome strips.
func canvasRect(w, h int, panelOpen bool) image.Rectangle {
	right := w
	if panelOpen {
		right = w - panelWidth
	}
	return image.Rect(0, headerHeight, right, h-bottomHeight)
}

// headerButtons lays out the toolbar buttons left to right after the program
// title. Labels reflect the current toggle states.
func headerButtons(annotate, panelOpen bool) []button {
	pins := "Pins:off"
	if annotate {
		pins = "Pins:on"
	}
	panel := "Panel:off"
	if panelOpen {
		panel = "Panel:on"
	}
	labels := []button{
		{name: "zoomin", label: "+"},
		{name: "zoomout", label: "-"},
		{name: "reset", label: "Reset"},
		{name: "pins", label: pins},
		{name: "panel", label: panel},
	}
	x := measureLabel("PinView") + 16
	out := make([]button, 0, len(labels))
	for _, b := range labels {
		w := measureLabel(b.label) + 12
		b.rect = image.Rect(x, 2, x+w, headerHeight-2)
		out = append(out, b)
		x += w + 4
	}
	return out
}

// bottomShortcuts lays out the clickable shortcut hints in the bottom strip.
// The set changes while the comment editor is open.
func bottomShortcuts(w, h int, editing bool, zoom float64) []button {
	var labels []button
	if editing {
		labels = []button{
			{name: "save", label: "Enter:save"},
			{name: "cancel", label: "Esc:cancel"},
		}
	} else {
		labels = []button{
			{name: "zoomin", label: fmt.Sprintf("+/-:zoom (%.0f%%)", zoom*100)},
			{name: "reset", label: "0:reset"},
			{name: "pins", label: "P:pins"},
			{name: "panel", label: "L:panel"},
			{name: "copy", label: "C:copy"},
			{name: "quit", label: "Q:quit"},
		}
	}
	x := 4
	y := h - bottomHeight + 16
	out := make([]button, 0, len(labels))
	for _, b := range labels {
		lw := measureLabel(b.label)
		b.rect = image.Rect(x-2, y-14, x+lw+2, y+4)
		out = append(out, b)
		x = b.rect.Max.X + 8
	}
	return out
}

// buttonAt returns the index of the button containing p, or -1.
func buttonAt(buttons []button, p image.Point) int {
	for i, b := range buttons {
		if p.In(b.rect) {
			return i
		}
	}
	return -1
}

// hitPin returns the id of the topmost pin whose marker contains p. Later
// pins draw on top of earlier ones, so the scan runs back to front.
func hitPin(pins []annotation.Pin, viewRect image.Rectangle, p image.Point) (int, bool) {
	for i := len(pins) - 1; i >= 0; i-- {
		c := interact.Absolute(pins[i].X, pins[i].Y, viewRect)
		dx := p.X - c.X
		dy := p.Y - c.Y
		if dx*dx+dy*dy <= pinRadius*pinRadius {
			return pins[i].ID, true
		}
	}
	return 0, false
}

// placementAt maps a click onto pin coordinates. Percentages are relative to
// the full rendered image rectangle, but the click must land on its visible
// part: when zoomed in the image extends under the chrome, and a release
// there must not drop a hidden pin.
func placementAt(px, py float32, viewRect, canvas image.Rectangle) (x, y float64, ok bool) {
	if !image.Pt(int(px), int(py)).In(canvas) {
		return 0, 0, false
	}
	return interact.Relative(px, py, viewRect)
}

// panelEntryAt maps a point in the panel to an index into the commented-pin
// list, or -1 when the point is on the panel header or past the last entry.
func panelEntryAt(panel image.Rectangle, p image.Point, count int) int {
	if !p.In(panel) {
		return -1
	}
	y := p.Y - panel.Min.Y - panelHeaderHeight
	if y < 0 {
		return -1
	}
	idx := y / entryHeight
	if idx >= count {
		return -1
	}
	return idx
}

// editorRect places the comment editor box near the pin, clamped so it stays
// inside the canvas.
func editorRect(pin image.Point, canvas image.Rectangle) image.Rectangle {
	const boxW, boxH = 220, 48
	x := pin.X + pinRadius + 4
	y := pin.Y - boxH/2
	if x+boxW > canvas.Max.X {
		x = pin.X - pinRadius - 4 - boxW
	}
	if x < canvas.Min.X {
		x = canvas.Min.X
	}
	if y < canvas.Min.Y {
		y = canvas.Min.Y
	}
	if y+boxH > canvas.Max.Y {
		y = canvas.Max.Y - boxH
	}
	return image.Rect(x, y, x+boxW, y+boxH)
}

// truncateLabel shortens s so it fits within max columns of the panel font,
// appending an ellipsis when anything was cut.
func truncateLabel(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
