// Package ui runs the pin-annotation image viewer window: a zoomable,
// pannable image surface where clicks place numbered pins, each pin carries a
// free-text comment, and a side panel lists the commented pins.
package ui

import (
	"image"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pinview/internal/annotation"
	"github.com/example/pinview/internal/clipboard"
	"github.com/example/pinview/internal/interact"
	"github.com/example/pinview/internal/notify"
	"github.com/example/pinview/internal/theme"
	"github.com/example/pinview/internal/viewport"
)

// highlightDuration is how long a pin stays highlighted after its panel entry
// is selected. A newer selection supersedes the pending clear.
const highlightDuration = 2 * time.Second

// toastDuration is how long transient feedback messages stay on screen.
const toastDuration = 2 * time.Second

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// App holds the viewer configuration and the pieces of state that outlive a
// single frame.
type App struct {
	Image    *image.RGBA
	AltText  string
	Theme    *theme.Theme
	Annotate bool
	Panel    bool

	store    *annotation.Store
	machine  *interact.Machine
	view     *viewport.Controller
	notifier *notify.Notifier

	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithImage sets the image displayed by the viewer.
func WithImage(img *image.RGBA) Option { return func(a *App) { a.Image = img } }

// WithAltText sets the descriptive label shown in the window title.
func WithAltText(alt string) Option { return func(a *App) { a.AltText = alt } }

// WithTheme sets the color theme.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithAnnotationMode sets whether plain image clicks create pins at start.
func WithAnnotationMode(on bool) Option { return func(a *App) { a.Annotate = on } }

// WithPanel sets whether the comment panel starts open.
func WithPanel(open bool) Option { return func(a *App) { a.Panel = open } }

// WithNotifier registers a desktop notifier for save/copy events.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		Theme:    theme.Default(),
		Annotate: true,
		Panel:    true,
		store:    annotation.NewStore(),
		machine:  interact.NewMachine(),
		view:     viewport.New(),
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Store exposes the annotation store; pins placed programmatically this way
// are not gated by the annotation-mode toggle.
func (a *App) Store() *annotation.Store { return a.store }

// NotifyChanged requests a repaint, e.g. from a highlight expiry timer.
func (a *App) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// saveEdit commits text to the pin under edit and closes the edit session.
// saved reports whether a non-empty comment landed; the first non-empty save
// on a pin also fires the save notification.
func (a *App) saveEdit(text string) (id int, saved bool) {
	id, ok := a.machine.EditingID()
	if !ok {
		return 0, false
	}
	prev, _ := a.store.Get(id)
	err := a.store.UpdateText(id, text)
	a.machine.FinishEdit()
	if err != nil {
		log.Printf("save comment: %v", err)
		return id, false
	}
	if text != "" && prev.Text == "" {
		a.notifier.Save(id)
	}
	return id, text != ""
}

// cancelEdit closes the edit session without committing. A pin whose saved
// text is still empty is transient and gets removed; a commented pin stays.
func (a *App) cancelEdit() (id int, removed bool) {
	id = a.machine.FinishEdit()
	if id == 0 {
		return 0, false
	}
	if p, ok := a.store.Get(id); ok && p.Text == "" {
		a.store.Remove(id)
		return id, true
	}
	return id, false
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main is the window event loop. It owns all mutable session state; every
// mutation happens on this goroutine.
func (a *App) Main(s screen.Screen) {
	rgba := a.Image
	if rgba == nil {
		log.Fatal("ui: no image configured")
	}
	th := a.Theme
	if th == nil {
		th = theme.Default()
	}

	width := rgba.Bounds().Dx() + panelWidth
	height := rgba.Bounds().Dy() + headerHeight + bottomHeight
	width = clampInt(width, 640, 1600)
	height = clampInt(height, 420, 1000)

	title := "PinView"
	if a.AltText != "" {
		title = "PinView — " + a.AltText
	}
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	if a.updateCh != nil {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-a.updateCh:
					w.Send(paint.Event{})
				case <-done:
					return
				}
			}
		}()
		defer close(done)
	}

	annotate := a.Annotate
	panelOpen := a.Panel

	canvas := canvasRect(width, height, panelOpen)
	a.view.Fit(rgba.Bounds(), canvas.Dx(), canvas.Dy())

	// Per-session state. The drag/click decision lives in a.machine; these
	// are the presentational leftovers around it.
	var panStart image.Point // view offset at press time
	var pressPin int         // pin under the pointer at press time
	var editorText string
	var selected = -1 // index into the commented-pin list
	var highlightID int
	var highlightUntil time.Time
	var message string
	var messageUntil time.Time
	var hoverHeader = -1
	var hoverBottom = -1
	var hoverEntry = -1
	quit := false

	painter := newPainter(s, w)
	defer painter.stop()

	toast := func(text string) {
		message = text
		messageUntil = time.Now().Add(toastDuration)
	}

	saveEdit := func() {
		if _, saved := a.saveEdit(editorText); saved {
			toast("comment saved")
		}
		editorText = ""
	}

	cancelEdit := func() {
		a.cancelEdit()
		editorText = ""
	}

	copySelected := func() {
		pins := a.store.ListWithText()
		if selected < 0 || selected >= len(pins) {
			return
		}
		p := pins[selected]
		if err := clipboard.WriteText(p.Text); err != nil {
			log.Printf("copy comment: %v", err)
			return
		}
		a.notifier.Copy(p.ID)
		toast("comment copied")
	}

	highlight := func(id int) {
		highlightID = id
		highlightUntil = time.Now().Add(highlightDuration)
		time.AfterFunc(highlightDuration, a.NotifyChanged)
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}

	register("zoomin", shortcutList{{Rune: '+'}, {Rune: '='}}, func() { a.view.ZoomIn() })
	register("zoomout", shortcutList{{Rune: '-'}}, func() { a.view.ZoomOut() })
	register("reset", shortcutList{{Rune: '0'}}, func() { a.view.Reset() })
	register("pins", shortcutList{{Rune: 'p'}}, func() { annotate = !annotate })
	register("panel", shortcutList{{Rune: 'l'}}, func() {
		panelOpen = !panelOpen
		if !panelOpen {
			selected = -1
		}
	})
	register("copy", shortcutList{{Rune: 'c'}}, copySelected)
	register("quit", shortcutList{{Rune: 'q'}}, func() { quit = true })
	register("save", nil, saveEdit)
	register("cancel", nil, cancelEdit)

	handleShortcut := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			editingID, editing := a.machine.EditingID()
			st := frameState{
				width:          width,
				height:         height,
				img:            rgba,
				viewRect:       a.view.ImageRect(rgba.Bounds(), canvasRect(width, height, panelOpen)),
				zoom:           a.view.Zoom(),
				pins:           a.store.List(),
				annotate:       annotate,
				panelOpen:      panelOpen,
				selected:       selected,
				highlightID:    highlightID,
				highlightUntil: highlightUntil,
				editing:        editing,
				editingID:      editingID,
				editorText:     editorText,
				message:        message,
				messageUntil:   messageUntil,
				hoverHeader:    hoverHeader,
				hoverBottom:    hoverBottom,
				hoverEntry:     hoverEntry,
				theme:          th,
			}
			painter.submit(st)
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			_, editing := a.machine.EditingID()

			// A pointer session in flight stays with the machine even when the
			// pointer strays over the chrome, so a drag that ends on the
			// toolbar still releases.
			if a.machine.State() == interact.StatePointerDown {
				canvas := canvasRect(width, height, panelOpen)
				viewRect := a.view.ImageRect(rgba.Bounds(), canvas)
				if e.Direction == mouse.DirNone {
					dx, dy, dragging := a.machine.Move(e.X, e.Y)
					if dragging {
						// Pan regardless of the annotation-mode toggle; the
						// toggle gates pin creation only.
						zoom := a.view.Zoom()
						a.view.SetOffset(panStart.Add(image.Pt(int(float64(dx)/zoom), int(float64(dy)/zoom))))
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease {
					click := a.machine.Release()
					if !click {
						w.Send(paint.Event{})
						continue
					}
					if pressPin != 0 {
						// Pins intercept the click before the image surface,
						// regardless of the annotation-mode toggle.
						if pin, ok := a.store.Get(pressPin); ok && a.machine.StartEdit(pin.ID) {
							editorText = pin.Text
						}
						pressPin = 0
						w.Send(paint.Event{})
						continue
					}
					if !annotate {
						continue
					}
					x, y, ok := placementAt(e.X, e.Y, viewRect, canvas)
					if !ok {
						continue
					}
					pin := a.store.Append(x, y)
					if a.machine.StartEdit(pin.ID) {
						editorText = ""
					}
					w.Send(paint.Event{})
					continue
				}
			}

			if p.In(headerRect(width)) {
				buttons := headerButtons(annotate, panelOpen)
				idx := buttonAt(buttons, p)
				hoverHeader = idx
				if idx >= 0 && !editing && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					handleShortcut(buttons[idx].name)
					if quit {
						return
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}
			hoverHeader = -1

			if p.In(bottomRect(width, height)) {
				buttons := bottomShortcuts(width, height, editing, a.view.Zoom())
				idx := buttonAt(buttons, p)
				hoverBottom = idx
				if idx >= 0 && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					handleShortcut(buttons[idx].name)
					if quit {
						return
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}
			hoverBottom = -1

			if panel := panelRect(width, height, panelOpen); p.In(panel) {
				pins := a.store.ListWithText()
				idx := panelEntryAt(panel, p, len(pins))
				hoverEntry = idx
				if idx >= 0 && !editing && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					selected = idx
					highlight(pins[idx].ID)
					w.Send(paint.Event{})
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}
			hoverEntry = -1

			// Canvas area. While the editor is open, pointer input is inert:
			// the edit session ends only on save or cancel.
			if editing {
				continue
			}

			canvas := canvasRect(width, height, panelOpen)
			viewRect := a.view.ImageRect(rgba.Bounds(), canvas)

			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				if !a.machine.Press(e.X, e.Y) {
					continue
				}
				panStart = a.view.Offset()
				if id, ok := hitPin(a.store.List(), viewRect, p); ok {
					pressPin = id
				} else {
					pressPin = 0
				}
				continue
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if _, editing := a.machine.EditingID(); editing {
				switch e.Code {
				case key.CodeReturnEnter:
					saveEdit()
					w.Send(paint.Event{})
					continue
				case key.CodeEscape:
					cancelEdit()
					w.Send(paint.Event{})
					continue
				case key.CodeDeleteBackspace:
					if len(editorText) > 0 {
						r := []rune(editorText)
						editorText = string(r[:len(r)-1])
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Rune > 0 {
					editorText += string(e.Rune)
					w.Send(paint.Event{})
				}
				continue
			}

			ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: 0, Modifiers: e.Modifiers &^ key.ModShift}
			if action, ok := keyboardAction[ks]; ok {
				handleShortcut(action)
				if quit {
					return
				}
				continue
			}
			switch e.Code {
			case key.CodeLeftArrow:
				a.view.PanBy(-10, 0)
				w.Send(paint.Event{})
			case key.CodeRightArrow:
				a.view.PanBy(10, 0)
				w.Send(paint.Event{})
			case key.CodeUpArrow:
				a.view.PanBy(0, -10)
				w.Send(paint.Event{})
			case key.CodeDownArrow:
				a.view.PanBy(0, 10)
				w.Send(paint.Event{})
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
