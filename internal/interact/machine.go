// Package interact reifies the pointer interaction state machine that decides
// whether a pointer sequence on the image is a click (place or open a pin) or
// a drag (pan), and maps pointer positions onto the rendered image.
package interact

import "image"

// State is the machine's current phase.
type State int

const (
	// StateIdle means no pointer button is held and no editor is open.
	StateIdle State = iota
	// StatePointerDown tracks a candidate drag between press and release.
	StatePointerDown
	// StateEditing means a pin's comment editor is open. Exactly one pin can
	// be edited at a time.
	StateEditing
)

// DefaultDragThreshold is the displacement in screen units beyond which a
// press/release sequence counts as a pan rather than a click.
const DefaultDragThreshold = 5

// Machine tracks one pointer session at a time. It is driven from the UI
// event loop and never called concurrently.
type Machine struct {
	state     State
	threshold float32

	pressX, pressY float32
	dragged        bool

	editID int
}

// NewMachine creates a machine with the default drag threshold.
func NewMachine() *Machine {
	return &Machine{threshold: DefaultDragThreshold}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Press begins a pointer session at the given screen position. It reports
// whether the press was accepted; presses are ignored while an editor is open.
func (m *Machine) Press(x, y float32) bool {
	if m.state != StateIdle {
		return false
	}
	m.state = StatePointerDown
	m.pressX, m.pressY = x, y
	m.dragged = false
	return true
}

// Move updates the session with a new pointer position and returns the
// displacement from the press point. Once either axis exceeds the threshold
// the session is a drag for good; pin creation is suppressed on release.
func (m *Machine) Move(x, y float32) (dx, dy float32, dragging bool) {
	if m.state != StatePointerDown {
		return 0, 0, false
	}
	dx = x - m.pressX
	dy = y - m.pressY
	if abs(dx) > m.threshold || abs(dy) > m.threshold {
		m.dragged = true
	}
	return dx, dy, m.dragged
}

// Release ends the pointer session. It reports whether the sequence was a
// plain click; a drag never is.
func (m *Machine) Release() (click bool) {
	if m.state != StatePointerDown {
		return false
	}
	m.state = StateIdle
	return !m.dragged
}

// Dragging reports whether the current session has crossed the drag threshold.
func (m *Machine) Dragging() bool {
	return m.state == StatePointerDown && m.dragged
}

// StartEdit opens the editor for the given pin id. It reports whether the
// transition happened; a second editor cannot be opened over the first.
func (m *Machine) StartEdit(id int) bool {
	if m.state == StateEditing {
		return false
	}
	m.state = StateEditing
	m.editID = id
	return true
}

// FinishEdit closes the editor on save or cancel and returns the edited pin
// id. The machine returns to idle either way.
func (m *Machine) FinishEdit() int {
	if m.state != StateEditing {
		return 0
	}
	id := m.editID
	m.state = StateIdle
	m.editID = 0
	return id
}

// EditingID returns the id of the pin under edit, if any.
func (m *Machine) EditingID() (int, bool) {
	if m.state != StateEditing {
		return 0, false
	}
	return m.editID, true
}

// Relative maps a screen point onto the rendered image rectangle as
// percentages of its width and height. rect must be the rectangle as laid out
// after the zoom/pan transform, not the natural image size. ok is false when
// the point falls outside the rectangle.
func Relative(px, py float32, rect image.Rectangle) (x, y float64, ok bool) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return 0, 0, false
	}
	p := image.Pt(int(px), int(py))
	if !p.In(rect) {
		return 0, 0, false
	}
	x = (float64(px) - float64(rect.Min.X)) / float64(rect.Dx()) * 100
	y = (float64(py) - float64(rect.Min.Y)) / float64(rect.Dy()) * 100
	return x, y, true
}

// Absolute is the inverse of Relative: it places a stored percentage position
// back onto the rendered rectangle, for drawing the pin.
func Absolute(x, y float64, rect image.Rectangle) image.Point {
	return image.Pt(
		rect.Min.X+int(x/100*float64(rect.Dx())),
		rect.Min.Y+int(y/100*float64(rect.Dy())),
	)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
