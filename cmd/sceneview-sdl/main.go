// Package main is the standalone scene viewer: an SDL2 window with the
// scene rendered straight to the default framebuffer, no UI overlay. Tab
// switches between flying the free camera and driving the vehicle, F12
// saves a screenshot.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/config"
	"github.com/solhaug/sceneview/internal/engine/assets"
	"github.com/solhaug/sceneview/internal/engine/debug"
	"github.com/solhaug/sceneview/internal/engine/input"
	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/engine/render"
	"github.com/solhaug/sceneview/internal/engine/scene"
	"github.com/solhaug/sceneview/internal/engine/skybox"
	"github.com/solhaug/sceneview/internal/engine/window"
	"github.com/solhaug/sceneview/internal/estate"
	"github.com/solhaug/sceneview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scene Viewer (SDL) ===")

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

type viewer struct {
	cfg    *config.Config
	win    *window.Window
	in     *input.Handler
	lib    *assets.Library
	lights *lighting.Lights
	graph  *scene.Graph

	renderer *render.Renderer
	gizmos   *render.GizmoRenderer
	sky      *skybox.Skybox

	driving bool
}

func run(cfg *config.Config) error {
	debug.SetStrict(cfg.Debug.StrictGL)

	win, err := window.New(window.Options{
		Title:      "Scene Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("GL init: %w", err)
	}
	logger.Info("GL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	v := &viewer{cfg: cfg, win: win, in: input.New()}

	v.lib = assets.NewLibrary()
	defer v.lib.Destroy()
	v.lights = lighting.New()

	if v.renderer, err = render.New(v.lights, cfg.Scene.MaxInstancesPerDraw); err != nil {
		return err
	}
	defer v.renderer.Destroy()
	if v.gizmos, err = render.NewGizmos(); err != nil {
		return err
	}
	defer v.gizmos.Destroy()
	if v.sky, err = skybox.New(
		[3]uint8{168, 200, 230},
		[3]uint8{60, 110, 200},
		[3]uint8{70, 74, 78},
	); err != nil {
		return err
	}
	defer v.sky.Destroy()

	if v.graph, err = estate.NewScene(v.lib, v.renderer.Program(), cfg.Scene); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	return v.loop()
}

func (v *viewer) loop() error {
	start := time.Now()
	last := start

	for v.in.Poll() {
		now := time.Now()
		delta := float32(now.Sub(last).Seconds())
		if delta > 0.1 {
			delta = 0.1
		}
		last = now

		if v.in.Pressed(sdl.SCANCODE_TAB) {
			v.toggleDriving()
		}
		if v.in.Pressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}

		ctx := &scene.FrameContext{
			Input: v.in.Sample(),
			Total: float32(now.Sub(start).Seconds()),
			Delta: delta,
		}
		v.graph.Update(ctx)
		v.graph.CalculateWorldTransforms()

		if err := v.drawFrame(); err != nil {
			return err
		}
		v.win.SwapBuffers()
	}
	return nil
}

func (v *viewer) drawFrame() error {
	w, h := v.win.DrawableSize()
	gl.Viewport(0, 0, w, h)
	bg := v.cfg.Scene.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view, err := v.graph.View()
	if err != nil {
		return err
	}
	aspect := float32(w) / float32(h)
	proj, _ := v.graph.Projection(aspect)
	camPos, _ := v.graph.CameraPosition()

	v.graph.Draw(v.renderer)
	v.renderer.Flush(view, proj, camPos)

	if v.cfg.Scene.LightGizmos {
		v.gizmos.Draw(view, proj, v.lights)
	}
	if v.cfg.Scene.Skybox {
		v.sky.Draw(view, proj)
	}

	debug.CheckGL("viewer.drawFrame")
	return nil
}

func (v *viewer) toggleDriving() {
	v.driving = !v.driving

	if v.driving {
		vehicle, ok := v.graph.FindByName(estate.VehicleName)
		if !ok {
			logger.Warn("vehicle node missing")
			v.driving = false
			return
		}
		chase, ok := v.graph.FindByName(estate.ChaseCameraName)
		if !ok {
			logger.Warn("chase camera missing")
			v.driving = false
			return
		}
		v.graph.SetVehicleControlled(vehicle)
		if err := v.graph.ActivateCamera(chase); err != nil {
			logger.Error("camera switch", zap.Error(err))
		}
		return
	}

	v.graph.SetVehicleControlled(nil)
	if free, ok := v.graph.FindByName(estate.FreeCameraName); ok {
		if err := v.graph.ActivateCamera(free); err != nil {
			logger.Error("camera switch", zap.Error(err))
		}
	}
}

func (v *viewer) screenshot() {
	w, h := v.win.DrawableSize()
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := debug.SaveScreenshot("screenshots", pixels, int(w), int(h))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
