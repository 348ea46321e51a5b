// Package viewport controls how the viewed image is scaled and panned inside
// the canvas area.
package viewport

import "image"

const (
	// MinZoom and MaxZoom bound the scale factor.
	MinZoom = 0.5
	MaxZoom = 5.0
	// ZoomStep is the multiplicative step applied by ZoomIn and ZoomOut.
	ZoomStep = 1.1
)

// Controller holds the zoom factor and pan offset for the canvas. The offset
// is stored in image coordinates so it is independent of zoom (panning feels
// the same at every scale). Zoom steps never touch the offset.
type Controller struct {
	zoom   float64
	offset image.Point
}

// New returns a controller at the identity transform.
func New() *Controller {
	return &Controller{zoom: 1}
}

// Zoom returns the current scale factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// Offset returns the current pan offset in image coordinates.
func (c *Controller) Offset() image.Point { return c.offset }

// ZoomIn raises the scale by one step, clamped to MaxZoom.
func (c *Controller) ZoomIn() {
	c.zoom *= ZoomStep
	if c.zoom > MaxZoom {
		c.zoom = MaxZoom
	}
}

// ZoomOut lowers the scale by one step, clamped to MinZoom.
func (c *Controller) ZoomOut() {
	c.zoom /= ZoomStep
	if c.zoom < MinZoom {
		c.zoom = MinZoom
	}
}

// Reset restores the identity transform: scale 1, no pan.
func (c *Controller) Reset() {
	c.zoom = 1
	c.offset = image.Point{}
}

// SetOffset replaces the pan offset.
func (c *Controller) SetOffset(p image.Point) { c.offset = p }

// PanBy shifts the offset by a screen-space displacement, converting it to
// image coordinates at the current zoom.
func (c *Controller) PanBy(dx, dy int) {
	c.offset = c.offset.Add(image.Pt(int(float64(dx)/c.zoom), int(float64(dy)/c.zoom)))
}

// Fit chooses the largest zoom (capped at 1) that shows the whole image
// inside the available area. Images smaller than the area render 1:1.
func (c *Controller) Fit(img image.Rectangle, availW, availH int) {
	if img.Dx() <= 0 || img.Dy() <= 0 || availW <= 0 || availH <= 0 {
		return
	}
	zx := float64(availW) / float64(img.Dx())
	zy := float64(availH) / float64(img.Dy())
	z := zx
	if zy < z {
		z = zy
	}
	if z > 1 {
		z = 1
	}
	if z < MinZoom {
		z = MinZoom
	}
	c.zoom = z
}

// ImageRect computes where the image lands on screen: centred in the canvas,
// shifted by the pan offset scaled by zoom, sized by the zoomed image
// dimensions. With a zero offset the content is centred, so Reset recentres.
// This rectangle is the reference for both pin placement and pin display.
func (c *Controller) ImageRect(img image.Rectangle, canvas image.Rectangle) image.Rectangle {
	w := int(float64(img.Dx()) * c.zoom)
	h := int(float64(img.Dy()) * c.zoom)
	x0 := canvas.Min.X + (canvas.Dx()-w)/2 + int(float64(c.offset.X)*c.zoom)
	y0 := canvas.Min.Y + (canvas.Dy()-h)/2 + int(float64(c.offset.Y)*c.zoom)
	return image.Rect(x0, y0, x0+w, y0+h)
}
