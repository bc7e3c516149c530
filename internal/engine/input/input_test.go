package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		pos, neg bool
		want     float32
	}{
		{"positive only", true, false, 1},
		{"negative only", false, true, -1},
		{"both cancel", true, true, 0},
		{"neither", false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := axis(tt.pos, tt.neg); got != tt.want {
				t.Errorf("axis(%v,%v) = %v, want %v", tt.pos, tt.neg, got, tt.want)
			}
		})
	}
}

func TestSampleMapsKeys(t *testing.T) {
	h := New()
	h.held[sdl.SCANCODE_W] = true
	h.held[sdl.SCANCODE_A] = true
	h.held[sdl.SCANCODE_LSHIFT] = true
	h.held[sdl.SCANCODE_UP] = true
	h.lookX, h.lookY = 0.5, -0.25

	s := h.Sample()

	if s.Move.Z() != 1 {
		t.Errorf("W should move forward, got Z = %v", s.Move.Z())
	}
	if s.Move.X() != -1 {
		t.Errorf("A should strafe left, got X = %v", s.Move.X())
	}
	if s.Move.Y() != 0 {
		t.Errorf("no vertical keys held, got Y = %v", s.Move.Y())
	}
	if !s.Boost {
		t.Error("shift should boost")
	}
	if s.Throttle != 1 {
		t.Errorf("up arrow should throttle, got %v", s.Throttle)
	}
	if s.Steer != 0 {
		t.Errorf("no steer keys held, got %v", s.Steer)
	}
	if s.Look.X() != 0.5 || s.Look.Y() != -0.25 {
		t.Errorf("look delta not carried through: %v", s.Look)
	}
}

func TestPressedIgnoresOtherKeys(t *testing.T) {
	h := New()
	h.pressed = append(h.pressed, sdl.SCANCODE_TAB)

	if !h.Pressed(sdl.SCANCODE_TAB) {
		t.Error("tab was pressed this frame")
	}
	if h.Pressed(sdl.SCANCODE_F12) {
		t.Error("F12 was not pressed this frame")
	}
}
