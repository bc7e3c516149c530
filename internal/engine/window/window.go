// Package window creates the SDL2 window and OpenGL 4.1 core context used
// by the standalone viewer binary.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/logger"
)

func init() {
	// GL calls must stay on the thread that created the context.
	runtime.LockOSThread()
}

// Options configures window creation.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window pairs the SDL window with its GL context.
type Window struct {
	opts      Options
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New initializes SDL video and creates a window with a 4.1 core profile
// context. 4.1 is the macOS ceiling, so it is the floor everywhere.
func New(opts Options) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("window: SDL init: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	sdlWindow, err := sdl.CreateWindow(
		opts.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(opts.Width), int32(opts.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: create: %w", err)
	}

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("window: GL context: %w", err)
	}

	if opts.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("vsync unavailable", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	logger.Info("window created",
		zap.String("title", opts.Title),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Bool("fullscreen", opts.Fullscreen),
		zap.Bool("vsync", opts.VSync),
	)

	return &Window{opts: opts, sdlWindow: sdlWindow, glContext: glContext}, nil
}

// SwapBuffers presents the rendered frame.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the GL drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) DrawableSize() (int32, int32) {
	return w.sdlWindow.GLGetDrawableSize()
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle updates the title bar, used for the FPS readout.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close tears down the context, window and SDL.
func (w *Window) Close() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
