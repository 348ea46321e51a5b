package ui

import (
	"image"
	"testing"
	"time"

	"github.com/example/pinview/internal/annotation"
	"github.com/example/pinview/internal/theme"
)

func TestFormatTimestamp(t *testing.T) {
	if got := formatTimestamp(time.Time{}); got != "" {
		t.Fatalf("zero time = %q, want empty", got)
	}
	ts := time.Date(2024, 5, 1, 9, 30, 5, 0, time.UTC)
	if got := formatTimestamp(ts); got != "09:30:05" {
		t.Fatalf("formatTimestamp = %q, want 09:30:05", got)
	}
}

func TestDrawPinsPaintsMarker(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	th := theme.Default()
	st := frameState{
		viewRect: image.Rect(0, 0, 200, 200),
		pins:     []annotation.Pin{{ID: 1, X: 50, Y: 50}},
		theme:    th,
	}
	drawPins(dst, st, time.Now())

	// Probe inside the circle but left of the number glyph.
	if got := dst.RGBAAt(100-pinRadius+1, 100); got != th.PinFill {
		t.Fatalf("marker pixel = %v, want %v", got, th.PinFill)
	}
}

func TestDrawPinsHaloOnlyWhileHighlighted(t *testing.T) {
	th := theme.Default()
	st := frameState{
		viewRect:    image.Rect(0, 0, 200, 200),
		pins:        []annotation.Pin{{ID: 1, X: 50, Y: 50}},
		highlightID: 1,
		theme:       th,
	}

	// Expired highlight leaves the ring unpainted.
	st.highlightUntil = time.Now().Add(-time.Second)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	drawPins(dst, st, time.Now())
	ringX := 100 + pinRadius + 2
	if got := dst.RGBAAt(ringX, 100); got == th.PinHighlight {
		t.Fatalf("halo painted after highlight expired")
	}

	st.highlightUntil = time.Now().Add(time.Second)
	dst = image.NewRGBA(image.Rect(0, 0, 200, 200))
	drawPins(dst, st, time.Now())
	if got := dst.RGBAAt(ringX, 100); got != th.PinHighlight {
		t.Fatalf("halo ring = %v, want %v", got, th.PinHighlight)
	}
}

func TestDrawHeaderShadesActiveToggles(t *testing.T) {
	th := theme.Default()
	probe := func(annotate, panelOpen bool, name string) (got [4]uint8) {
		dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
		st := frameState{
			width:       800,
			height:      600,
			annotate:    annotate,
			panelOpen:   panelOpen,
			hoverHeader: -1,
			theme:       th,
		}
		drawHeader(dst, st)
		for _, b := range headerButtons(annotate, panelOpen) {
			if b.name == name {
				c := dst.RGBAAt(b.rect.Min.X+2, b.rect.Min.Y+2)
				return [4]uint8{c.R, c.G, c.B, c.A}
			}
		}
		t.Fatalf("button %q not found", name)
		return
	}

	on := th.ButtonBackgroundPress
	off := th.ButtonBackground
	if got := probe(true, false, "pins"); got != [4]uint8{on.R, on.G, on.B, on.A} {
		t.Fatalf("active pins toggle = %v, want pressed shade", got)
	}
	if got := probe(false, false, "pins"); got != [4]uint8{off.R, off.G, off.B, off.A} {
		t.Fatalf("inactive pins toggle = %v, want plain background", got)
	}
	if got := probe(false, true, "panel"); got != [4]uint8{on.R, on.G, on.B, on.A} {
		t.Fatalf("active panel toggle = %v, want pressed shade", got)
	}
}

func TestDrawPanelSelectedEntry(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
	th := theme.Default()
	st := frameState{
		width:      800,
		height:     600,
		panelOpen:  true,
		selected:   1,
		hoverEntry: -1,
		pins: []annotation.Pin{
			{ID: 1, X: 10, Y: 10, Text: "first", CreatedAt: time.Now()},
			{ID: 2, X: 20, Y: 20, Text: "second", CreatedAt: time.Now()},
			{ID: 3, X: 30, Y: 30}, // no comment, not listed
		},
		theme: th,
	}
	drawPanel(dst, st)

	panel := panelRect(800, 600, true)
	firstY := panel.Min.Y + panelHeaderHeight + 2
	secondY := panel.Min.Y + panelHeaderHeight + entryHeight + 2
	if got := dst.RGBAAt(panel.Min.X+40, firstY); got == th.PanelEntrySelected {
		t.Fatalf("first entry drawn selected, want plain background")
	}
	if got := dst.RGBAAt(panel.Min.X+40, secondY); got != th.PanelEntrySelected {
		t.Fatalf("second entry = %v, want selected background %v", got, th.PanelEntrySelected)
	}
}
