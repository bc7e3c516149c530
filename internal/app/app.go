// Package app wires the scene, renderer and UI into the cimgui-go backend
// loop. The scene is drawn into an offscreen framebuffer and shown as a
// texture inside the viewport window, with the control panel beside it.
package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/config"
	"github.com/solhaug/sceneview/internal/engine/assets"
	"github.com/solhaug/sceneview/internal/engine/debug"
	"github.com/solhaug/sceneview/internal/engine/framebuffer"
	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/engine/render"
	"github.com/solhaug/sceneview/internal/engine/scene"
	"github.com/solhaug/sceneview/internal/engine/skybox"
	"github.com/solhaug/sceneview/internal/estate"
	"github.com/solhaug/sceneview/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

// App owns every GL resource and the per-frame pipeline.
type App struct {
	cfg     *config.Config
	backend backend.Backend[sdlbackend.SDLWindowFlags]

	lib      *assets.Library
	lights   *lighting.Lights
	graph    *scene.Graph
	renderer *render.Renderer
	gizmos   *render.GizmoRenderer
	sky      *skybox.Skybox
	fb       *framebuffer.Framebuffer

	ui overlayState

	start     time.Time
	lastFrame time.Time
	stats     render.FrameStats
}

// New creates the window and GL context, then builds the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		start: time.Now(),
		ui:    newOverlayState(cfg),
	}

	debug.SetStrict(cfg.Debug.StrictGL)

	b, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("app: create backend: %w", err)
	}
	a.backend = b

	a.backend.SetBgColor(imgui.NewVec4(0.08, 0.08, 0.1, 1))
	a.backend.CreateWindow("Scene Viewer", cfg.Graphics.Width, cfg.Graphics.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("app: GL init: %w", err)
	}
	logger.Info("GL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if err := a.createResources(); err != nil {
		a.Destroy()
		return nil, err
	}
	return a, nil
}

func (a *App) createResources() error {
	a.lib = assets.NewLibrary()
	a.lights = lighting.New()
	a.ui.syncFromLights(a.lights)

	var err error
	if a.renderer, err = render.New(a.lights, a.cfg.Scene.MaxInstancesPerDraw); err != nil {
		return err
	}
	if a.gizmos, err = render.NewGizmos(); err != nil {
		return err
	}
	if a.sky, err = skybox.New(
		[3]uint8{168, 200, 230},
		[3]uint8{60, 110, 200},
		[3]uint8{70, 74, 78},
	); err != nil {
		return err
	}
	if a.fb, err = framebuffer.New(int32(a.cfg.Graphics.Width), int32(a.cfg.Graphics.Height)); err != nil {
		return err
	}
	if a.graph, err = estate.NewScene(a.lib, a.renderer.Program(), a.cfg.Scene); err != nil {
		return err
	}

	debug.CheckGL("app.createResources")
	logger.Info("scene built", zap.Int("house_rows", a.cfg.Scene.HouseRows))
	return nil
}

// Run enters the backend main loop and blocks until the window closes.
func (a *App) Run() {
	a.lastFrame = time.Now()
	a.backend.Run(a.frame)
}

// frame is the per-frame pipeline: sample input, update behaviors, refresh
// world transforms, draw the scene offscreen, then gizmos and skybox, then
// the UI on the default framebuffer.
func (a *App) frame() {
	now := time.Now()
	delta := float32(now.Sub(a.lastFrame).Seconds())
	if delta > 0.1 {
		delta = 0.1
	}
	a.lastFrame = now

	ctx := &scene.FrameContext{
		Input: a.sampleInput(),
		Total: float32(now.Sub(a.start).Seconds()),
		Delta: delta,
	}
	a.graph.Update(ctx)
	a.graph.CalculateWorldTransforms()

	a.drawScene()
	a.drawOverlay()
}

func (a *App) drawScene() {
	w, h := a.fb.Size()
	aspect := float32(w) / float32(h)

	view, err := a.graph.View()
	if err != nil {
		logger.Error("draw skipped", zap.Error(err))
		return
	}
	proj, _ := a.graph.Projection(aspect)
	camPos, _ := a.graph.CameraPosition()

	restore := a.fb.Bind()
	defer restore()

	bg := a.ui.background
	a.fb.Clear(bg[0], bg[1], bg[2], 1)
	gl.Enable(gl.DEPTH_TEST)

	a.graph.Draw(a.renderer)
	a.stats = a.renderer.Flush(view, proj, camPos)

	if a.ui.showGizmos {
		a.gizmos.Draw(view, proj, a.lights)
	}
	if a.ui.showSkybox {
		a.sky.Draw(view, proj)
	}
	debug.CheckGL("app.drawScene")
}

// sampleInput reads imgui's key and mouse state. Input captured by a UI
// widget stays with the UI.
func (a *App) sampleInput() scene.InputState {
	var s scene.InputState
	io := imgui.CurrentIO()

	if !io.WantCaptureKeyboard() {
		s.Move = mgl32.Vec3{
			keyAxis(imgui.KeyD, imgui.KeyA),
			keyAxis(imgui.KeyE, imgui.KeyQ),
			keyAxis(imgui.KeyW, imgui.KeyS),
		}
		s.Boost = imgui.IsKeyDown(imgui.KeyLeftShift) || imgui.IsKeyDown(imgui.KeyRightShift)
		s.Throttle = keyAxis(imgui.KeyUpArrow, imgui.KeyDownArrow)
		s.Steer = keyAxis(imgui.KeyRightArrow, imgui.KeyLeftArrow)
	}

	if a.ui.viewportHovered && imgui.IsMouseDragging(imgui.MouseButtonRight) {
		delta := io.MouseDelta()
		const lookScale = 0.003
		s.Look = mgl32.Vec2{delta.X * lookScale, delta.Y * lookScale}
	}

	return s
}

func keyAxis(pos, neg imgui.Key) float32 {
	switch {
	case imgui.IsKeyDown(pos) && !imgui.IsKeyDown(neg):
		return 1
	case imgui.IsKeyDown(neg) && !imgui.IsKeyDown(pos):
		return -1
	default:
		return 0
	}
}

// Destroy releases GL resources. The backend tears down the window itself
// when Run returns.
func (a *App) Destroy() {
	if a.graph != nil {
		a.graph = nil
	}
	if a.lib != nil {
		a.lib.Destroy()
		a.lib = nil
	}
	if a.sky != nil {
		a.sky.Destroy()
		a.sky = nil
	}
	if a.gizmos != nil {
		a.gizmos.Destroy()
		a.gizmos = nil
	}
	if a.renderer != nil {
		a.renderer.Destroy()
		a.renderer = nil
	}
	if a.fb != nil {
		a.fb.Destroy()
		a.fb = nil
	}
}
