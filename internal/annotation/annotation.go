// Package annotation holds the in-memory pin records for a viewing session.
package annotation

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an operation references an unknown pin id.
var ErrNotFound = errors.New("annotation: pin not found")

// Pin is a numbered marker placed on the viewed image. X and Y are percentages
// (0-100) of the rendered image rectangle at the moment the pin was placed, so
// they stay valid under zoom and pan as long as the image framing is unchanged.
type Pin struct {
	ID   int
	X, Y float64
	// Text is the attached comment. An empty string means the pin exists but
	// has no comment yet; such pins never appear in the comment panel.
	Text      string
	CreatedAt time.Time
}

// HasText reports whether the pin carries a comment.
func (p Pin) HasText() bool { return p.Text != "" }

// Store is an ordered list of pins. IDs come from a monotonic counter owned by
// the store, never from the list length, so an id is never reused after a
// deletion. All methods are called from the single UI event loop; the store
// does no locking of its own.
type Store struct {
	pins   []Pin
	nextID int

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// Append creates a pin at the given relative position and returns it. The pin
// starts with no comment; CreatedAt is the time of placement.
func (s *Store) Append(x, y float64) Pin {
	p := Pin{ID: s.nextID, X: x, Y: y, CreatedAt: s.now()}
	s.nextID++
	s.pins = append(s.pins, p)
	return p
}

// Get returns the pin with the given id.
func (s *Store) Get(id int) (Pin, bool) {
	for _, p := range s.pins {
		if p.ID == id {
			return p, true
		}
	}
	return Pin{}, false
}

// UpdateText replaces the comment on the pin with the given id. The timestamp
// is refreshed only the first time a non-empty comment lands on the pin;
// later edits keep the original time.
func (s *Store) UpdateText(id int, text string) error {
	for i := range s.pins {
		if s.pins[i].ID != id {
			continue
		}
		if s.pins[i].Text == "" && text != "" {
			s.pins[i].CreatedAt = s.now()
		}
		s.pins[i].Text = text
		return nil
	}
	return ErrNotFound
}

// Remove deletes the pin with the given id. Removing an unknown id is a no-op.
func (s *Store) Remove(id int) {
	for i := range s.pins {
		if s.pins[i].ID == id {
			s.pins = append(s.pins[:i], s.pins[i+1:]...)
			return
		}
	}
}

// Len returns the number of pins, commented or not.
func (s *Store) Len() int { return len(s.pins) }

// List returns all pins in creation order.
func (s *Store) List() []Pin {
	out := make([]Pin, len(s.pins))
	copy(out, s.pins)
	return out
}

// ListWithText returns the pins that carry a comment, preserving creation
// order. This is the view the comment panel renders.
func (s *Store) ListWithText() []Pin {
	var out []Pin
	for _, p := range s.pins {
		if p.HasText() {
			out = append(out, p)
		}
	}
	return out
}
