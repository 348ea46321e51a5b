package render

import (
	"image"
	"image/color"
	"testing"
)

func TestMarkerFillsCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	fill := color.RGBA{R: 200, A: 255}
	Marker(img, 20, 20, 3, fill, color.RGBA{}, 9)

	// Probe inside the circle but left of the number glyph.
	if got := img.RGBAAt(12, 20); got != fill {
		t.Fatalf("circle pixel = %v, want %v", got, fill)
	}
	// A point outside the radius stays untouched.
	if got := img.RGBAAt(20, 5); got.A != 0 {
		t.Fatalf("pixel outside marker was painted: %v", got)
	}
}

func TestMarkerClipsAtBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Must not panic when the marker extends past the canvas.
	Marker(img, 0, 0, 12, color.RGBA{B: 255, A: 255}, color.RGBA{}, 9)
}

func TestHaloLeavesInteriorAlone(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	hl := color.RGBA{R: 255, G: 200, A: 255}
	Halo(img, 30, 30, 12, hl, 2)

	if got := img.RGBAAt(30, 30); got.A != 0 {
		t.Fatalf("halo painted the interior: %v", got)
	}
	if got := img.RGBAAt(30+12, 30); got != hl {
		t.Fatalf("halo missing on the ring: %v", got)
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	light := color.RGBA{220, 220, 220, 255}
	dark := color.RGBA{192, 192, 192, 255}
	Checkerboard(img, img.Bounds(), 4, light, dark)

	if img.RGBAAt(0, 0) != light {
		t.Fatalf("expected light square at origin")
	}
	if img.RGBAAt(4, 0) != dark {
		t.Fatalf("expected dark square after one step")
	}
}
