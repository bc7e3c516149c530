// Package input polls SDL2 events and condenses them into the per-frame
// input sample the scene graph consumes.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/solhaug/sceneview/internal/engine/scene"
)

// lookScale converts relative mouse pixels to radians.
const lookScale = 0.003

// Handler accumulates SDL events between frames. Key state is tracked
// per-scancode so held keys drive continuous movement.
type Handler struct {
	held map[sdl.Scancode]bool

	lookX, lookY float32
	looking      bool

	quit bool

	pressed []sdl.Scancode
}

// New creates an empty handler.
func New() *Handler {
	return &Handler{held: make(map[sdl.Scancode]bool)}
}

// Poll drains the SDL event queue. Returns false once a quit was requested.
func (h *Handler) Poll() bool {
	h.lookX, h.lookY = 0, 0
	h.pressed = h.pressed[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			h.quit = true

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					h.quit = true
				}
				if e.Repeat == 0 {
					h.pressed = append(h.pressed, e.Keysym.Scancode)
				}
				h.held[e.Keysym.Scancode] = true
			case sdl.KEYUP:
				delete(h.held, e.Keysym.Scancode)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_RIGHT {
				h.looking = e.Type == sdl.MOUSEBUTTONDOWN
				sdl.SetRelativeMouseMode(h.looking)
			}

		case *sdl.MouseMotionEvent:
			if h.looking {
				h.lookX += float32(e.XRel) * lookScale
				h.lookY += float32(e.YRel) * lookScale
			}
		}
	}

	return !h.quit
}

// Sample converts the current key and mouse state into the scene's input
// shape. WASD moves, QE rises/sinks, shift boosts, arrows drive the vehicle.
func (h *Handler) Sample() scene.InputState {
	var s scene.InputState

	s.Move = mgl32.Vec3{
		axis(h.held[sdl.SCANCODE_D], h.held[sdl.SCANCODE_A]),
		axis(h.held[sdl.SCANCODE_E], h.held[sdl.SCANCODE_Q]),
		axis(h.held[sdl.SCANCODE_W], h.held[sdl.SCANCODE_S]),
	}
	s.Look = mgl32.Vec2{h.lookX, h.lookY}
	s.Boost = h.held[sdl.SCANCODE_LSHIFT] || h.held[sdl.SCANCODE_RSHIFT]
	s.Throttle = axis(h.held[sdl.SCANCODE_UP], h.held[sdl.SCANCODE_DOWN])
	s.Steer = axis(h.held[sdl.SCANCODE_RIGHT], h.held[sdl.SCANCODE_LEFT])

	return s
}

// Pressed reports whether key went down this frame, ignoring repeats.
func (h *Handler) Pressed(key sdl.Scancode) bool {
	for _, k := range h.pressed {
		if k == key {
			return true
		}
	}
	return false
}

func axis(pos, neg bool) float32 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
