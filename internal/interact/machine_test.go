package interact

import (
	"image"
	"testing"
)

func TestPlainClickIsNotADrag(t *testing.T) {
	m := NewMachine()
	if !m.Press(100, 100) {
		t.Fatal("press rejected")
	}
	if m.State() != StatePointerDown {
		t.Fatalf("state %v, want pointer-down", m.State())
	}
	// Movement inside the threshold keeps the session a click.
	if _, _, dragging := m.Move(103, 102); dragging {
		t.Fatal("movement under threshold marked as drag")
	}
	if click := m.Release(); !click {
		t.Fatal("expected a plain click")
	}
	if m.State() != StateIdle {
		t.Fatalf("state %v after release, want idle", m.State())
	}
}

func TestDragSuppressesClick(t *testing.T) {
	cases := []struct {
		name string
		x, y float32
	}{
		{"x axis", 106, 100},
		{"y axis", 100, 94},
		{"both", 120, 130},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine()
			m.Press(100, 100)
			if _, _, dragging := m.Move(tc.x, tc.y); !dragging {
				t.Fatal("expected drag past threshold")
			}
			// Coming back to the press point does not undo the drag.
			m.Move(100, 100)
			if click := m.Release(); click {
				t.Fatal("drag must not count as a click")
			}
		})
	}
}

func TestThresholdIsExclusive(t *testing.T) {
	m := NewMachine()
	m.Press(0, 0)
	if _, _, dragging := m.Move(5, 5); dragging {
		t.Fatal("displacement of exactly the threshold should not be a drag")
	}
	if _, _, dragging := m.Move(6, 0); !dragging {
		t.Fatal("displacement past the threshold should be a drag")
	}
}

func TestPressIgnoredWhileEditing(t *testing.T) {
	m := NewMachine()
	if !m.StartEdit(4) {
		t.Fatal("edit rejected")
	}
	if m.Press(10, 10) {
		t.Fatal("press must be ignored while editing")
	}
	if id, ok := m.EditingID(); !ok || id != 4 {
		t.Fatalf("editing id = %d, %v", id, ok)
	}
	if got := m.FinishEdit(); got != 4 {
		t.Fatalf("FinishEdit returned %d, want 4", got)
	}
	if m.State() != StateIdle {
		t.Fatalf("state %v after edit, want idle", m.State())
	}
}

func TestSingleEditFocus(t *testing.T) {
	m := NewMachine()
	m.StartEdit(1)
	if m.StartEdit(2) {
		t.Fatal("second editor must not open over the first")
	}
}

func TestMoveDisplacement(t *testing.T) {
	m := NewMachine()
	m.Press(50, 50)
	dx, dy, _ := m.Move(80, 30)
	if dx != 30 || dy != -20 {
		t.Fatalf("displacement (%v,%v), want (30,-20)", dx, dy)
	}
}

func TestRelativeMapping(t *testing.T) {
	rect := image.Rect(100, 50, 300, 250) // 200x200 on screen
	x, y, ok := Relative(160, 130, rect)
	if !ok {
		t.Fatal("point inside rect reported outside")
	}
	if x != 30 || y != 40 {
		t.Fatalf("relative = (%v,%v), want (30,40)", x, y)
	}
}

func TestRelativeOutsideRect(t *testing.T) {
	rect := image.Rect(0, 0, 100, 100)
	if _, _, ok := Relative(150, 50, rect); ok {
		t.Fatal("point outside rect reported inside")
	}
	if _, _, ok := Relative(10, 10, image.Rectangle{}); ok {
		t.Fatal("empty rect cannot contain points")
	}
}

func TestAbsoluteRoundTrip(t *testing.T) {
	rect := image.Rect(100, 50, 300, 250)
	p := Absolute(30, 40, rect)
	if p.X != 160 || p.Y != 130 {
		t.Fatalf("absolute = %v, want (160,130)", p)
	}
}
