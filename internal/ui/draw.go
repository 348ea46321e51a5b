package ui

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/pinview/internal/annotation"
	"github.com/example/pinview/internal/interact"
	"github.com/example/pinview/internal/render"
	"github.com/example/pinview/internal/theme"
)

var commentFace font.Face
var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	commentFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// frameState is everything a single frame needs, captured on the event loop
// goroutine and handed to the paint worker by value.
type frameState struct {
	width, height int
	img           *image.RGBA
	viewRect      image.Rectangle
	zoom          float64

	pins      []annotation.Pin
	annotate  bool
	panelOpen bool
	selected  int

	highlightID    int
	highlightUntil time.Time

	editing    bool
	editingID  int
	editorText string

	message      string
	messageUntil time.Time

	hoverHeader int
	hoverBottom int
	hoverEntry  int

	theme *theme.Theme
}

// painter owns the asynchronous draw worker. Frames are submitted from the
// event loop; a frame still in flight is canceled when a newer one arrives,
// except that every frameDropThreshold'th frame is allowed to finish.
type painter struct {
	s screen.Screen
	w screen.Window

	mu        sync.Mutex
	cancel    context.CancelFunc
	dropCount int

	ch   chan frameState
	done chan struct{}
}

func newPainter(s screen.Screen, w screen.Window) *painter {
	p := &painter{s: s, w: w, ch: make(chan frameState, 1), done: make(chan struct{})}
	go func() {
		defer close(p.done)
		for st := range p.ch {
			ctx, cancel := context.WithCancel(context.Background())
			p.mu.Lock()
			p.cancel = cancel
			p.mu.Unlock()
			drawFrame(ctx, s, w, st)
			p.mu.Lock()
			p.cancel = nil
			if ctx.Err() == nil {
				p.dropCount = 0
			}
			p.mu.Unlock()
			cancel()
		}
	}()
	return p
}

// submit queues a frame, replacing any frame not yet picked up and canceling
// the one being drawn.
func (p *painter) submit(st frameState) {
	p.mu.Lock()
	if p.cancel != nil {
		if p.dropCount < frameDropThreshold {
			p.cancel()
			p.dropCount++
		}
	}
	p.mu.Unlock()
	select {
	case p.ch <- st:
	default:
		select {
		case <-p.ch:
		default:
		}
		p.ch <- st
	}
}

func (p *painter) stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	close(p.ch)
	<-p.done
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st frameState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	th := st.theme

	render.Fill(dst, dst.Bounds(), th.Background)
	canvas := canvasRect(st.width, st.height, st.panelOpen)
	render.Checkerboard(dst, canvas, 8, th.CheckerLight, th.CheckerDark)
	if ctx.Err() != nil {
		return
	}

	// The image layer, clipped to the canvas so zoomed-in content cannot
	// bleed under the chrome.
	surface, _ := dst.SubImage(canvas).(*image.RGBA)
	if surface != nil && st.img != nil {
		xdraw.NearestNeighbor.Scale(surface, st.viewRect, st.img, st.img.Bounds(), draw.Over, nil)
	}
	if ctx.Err() != nil {
		return
	}

	now := time.Now()
	if surface != nil {
		drawPins(surface, st, now)
	}
	if ctx.Err() != nil {
		return
	}

	drawHeader(dst, st)
	drawBottom(dst, st)
	if st.panelOpen {
		drawPanel(dst, st)
	}
	if ctx.Err() != nil {
		return
	}

	if st.editing {
		drawEditor(dst, st, canvas)
	}

	if st.message != "" && now.Before(st.messageUntil) {
		drawToast(dst, st)
	}
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func drawPins(dst *image.RGBA, st frameState, now time.Time) {
	for _, p := range st.pins {
		c := pinCenter(p, st.viewRect)
		if st.highlightID == p.ID && now.Before(st.highlightUntil) {
			render.Halo(dst, c.X, c.Y, pinRadius+2, st.theme.PinHighlight, 3)
		}
		render.Marker(dst, c.X, c.Y, p.ID, st.theme.PinFill, st.theme.PinText, pinRadius)
	}
}

func drawHeader(dst *image.RGBA, st frameState) {
	th := st.theme
	render.Fill(dst, headerRect(st.width), th.ToolbarBackground)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
	d.Dot = fixed.P(6, 16)
	d.DrawString("PinView")

	for i, b := range headerButtons(st.annotate, st.panelOpen) {
		bg := th.ButtonBackground
		// Active toggles get the pressed shade so their state reads at a
		// glance; hover still wins while the pointer is on the button.
		if (b.name == "pins" && st.annotate) || (b.name == "panel" && st.panelOpen) {
			bg = th.ButtonBackgroundPress
		}
		if i == st.hoverHeader {
			bg = th.ButtonBackgroundHover
		}
		render.Fill(dst, b.rect, bg)
		render.Rect(dst, b.rect, th.ButtonBorder, 1)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13}
		d.Dot = fixed.P(b.rect.Min.X+6, b.rect.Max.Y-6)
		d.DrawString(b.label)
	}
}

func drawBottom(dst *image.RGBA, st frameState) {
	th := st.theme
	render.Fill(dst, bottomRect(st.width, st.height), th.ToolbarBackground)
	for i, b := range bottomShortcuts(st.width, st.height, st.editing, st.zoom) {
		if i == st.hoverBottom {
			render.Fill(dst, b.rect, th.ButtonBackgroundHover)
		}
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
		d.Dot = fixed.P(b.rect.Min.X+2, b.rect.Max.Y-6)
		d.DrawString(b.label)
	}
}

func drawPanel(dst *image.RGBA, st frameState) {
	th := st.theme
	panel := panelRect(st.width, st.height, true)
	render.Fill(dst, panel, th.PanelBackground)
	render.Line(dst, panel.Min.X, panel.Min.Y, panel.Min.X, panel.Max.Y-1, th.PanelBorder, 1)

	commented := make([]annotation.Pin, 0, len(st.pins))
	for _, p := range st.pins {
		if p.HasText() {
			commented = append(commented, p)
		}
	}

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.PanelText), Face: basicfont.Face7x13}
	d.Dot = fixed.P(panel.Min.X+6, panel.Min.Y+14)
	d.DrawString(fmt.Sprintf("Comments (%d)", len(commented)))

	// Panel font is fixed width, so truncation works in columns.
	cols := (panelWidth - 16) / 7
	y := panel.Min.Y + panelHeaderHeight
	for i, p := range commented {
		entry := image.Rect(panel.Min.X+1, y, panel.Max.X, y+entryHeight)
		if entry.Min.Y >= panel.Max.Y {
			break
		}
		if i == st.selected {
			render.Fill(dst, entry.Intersect(panel), th.PanelEntrySelected)
		} else if i == st.hoverEntry {
			render.Fill(dst, entry.Intersect(panel), th.ButtonBackgroundHover)
		}
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.PanelText), Face: basicfont.Face7x13}
		d.Dot = fixed.P(entry.Min.X+5, y+15)
		d.DrawString(fmt.Sprintf("#%d  %s", p.ID, formatTimestamp(p.CreatedAt)))
		d.Dot = fixed.P(entry.Min.X+5, y+31)
		d.DrawString(truncateLabel(p.Text, cols))
		y += entryHeight
	}
}

func drawEditor(dst *image.RGBA, st frameState, canvas image.Rectangle) {
	th := st.theme
	var center image.Point
	found := false
	for _, p := range st.pins {
		if p.ID == st.editingID {
			center = pinCenter(p, st.viewRect)
			found = true
			break
		}
	}
	if !found {
		return
	}
	box := editorRect(center, canvas)
	render.Fill(dst, box, th.EditorBackground)
	render.Rect(dst, box, th.EditorBorder, 1)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.EditorText), Face: basicfont.Face7x13}
	d.Dot = fixed.P(box.Min.X+6, box.Min.Y+14)
	d.DrawString(fmt.Sprintf("Pin #%d", st.editingID))

	// Show the tail when the text overflows the box, keeping the caret visible.
	text := st.editorText
	cols := (box.Dx() - 12) / 7
	if r := []rune(text); cols > 1 && len(r) > cols-1 {
		text = string(r[len(r)-(cols-1):])
	}
	d = &font.Drawer{Dst: dst, Src: image.NewUniform(th.EditorText), Face: commentFace}
	d.Dot = fixed.P(box.Min.X+6, box.Max.Y-10)
	d.DrawString(text + "|")
}

func drawToast(dst *image.RGBA, st frameState) {
	th := st.theme
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: messageFace}
	wmsg := d.MeasureString(st.message).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := (st.width - wmsg) / 2
	py := st.height - bottomHeight - descent - 16
	rect := image.Rect(px-8, py-ascent-6, px+wmsg+8, py+descent+6)
	render.Fill(dst, rect, th.EditorBackground)
	render.Rect(dst, rect, th.EditorBorder, 1)
	d.Dot = fixed.P(px, py)
	d.DrawString(st.message)
}

func pinCenter(p annotation.Pin, viewRect image.Rectangle) image.Point {
	return interact.Absolute(p.X, p.Y, viewRect)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}
