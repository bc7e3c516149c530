package app

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/config"
	"github.com/solhaug/sceneview/internal/engine/debug"
	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/estate"
	"github.com/solhaug/sceneview/internal/logger"
)

const controlPanelWidth = 320

// overlayState holds every value the control panel edits. Light editors
// work in degrees and are converted on apply; the lights themselves store
// radians.
type overlayState struct {
	background [3]float32
	showGizmos bool
	showSkybox bool

	driveVehicle    bool
	viewportHovered bool

	sunColor     [4]float32
	sunDirection [2]float32 // azimuth, elevation in degrees

	bulbColor     [4]float32
	bulbPosition  [3]float32
	bulbLinear    float32
	bulbQuadratic float32

	spots [2]spotState

	screenshotDir string
}

type spotState struct {
	color     [4]float32
	position  [3]float32
	direction [2]float32 // azimuth, elevation in degrees
	linear    float32
	quadratic float32
	cutOff    float32 // degrees
	outerCut  float32 // degrees
}

func newOverlayState(cfg *config.Config) overlayState {
	return overlayState{
		background:    cfg.Scene.Background,
		showGizmos:    cfg.Scene.LightGizmos,
		showSkybox:    cfg.Scene.Skybox,
		screenshotDir: "screenshots",
	}
}

// syncFromLights pulls the current light values into the editors. Called
// once after the lights are created so the panel starts at the real state.
func (ui *overlayState) syncFromLights(l *lighting.Lights) {
	sun := l.Sun()
	ui.sunColor = vec4Array(sun.Color)
	az, el := directionAngles(sun.Direction)
	ui.sunDirection = [2]float32{az, el}

	bulb := l.Bulb()
	ui.bulbColor = vec4Array(bulb.Color)
	ui.bulbPosition = vec3Array(bulb.Position)
	ui.bulbLinear = bulb.Linear
	ui.bulbQuadratic = bulb.Quadratic

	for i, s := range [2]lighting.SpotLight{l.SpotLightOne(), l.SpotLightTwo()} {
		az, el := directionAngles(s.Direction)
		ui.spots[i] = spotState{
			color:     vec4Array(s.Color),
			position:  vec3Array(s.Position),
			direction: [2]float32{az, el},
			linear:    s.Linear,
			quadratic: s.Quadratic,
			cutOff:    mgl32.RadToDeg(s.CutOff),
			outerCut:  mgl32.RadToDeg(s.OuterCutOff),
		}
	}
}

// applyToLights writes the edited values back, converting degrees to
// radians.
func (ui *overlayState) applyToLights(l *lighting.Lights) {
	l.SetSun(lighting.DirectionalLight{
		Color: mgl32.Vec4(ui.sunColor),
		Direction: lighting.DirectionVector(
			mgl32.DegToRad(ui.sunDirection[0]),
			mgl32.DegToRad(ui.sunDirection[1]),
		),
	})

	l.SetBulb(lighting.PointLight{
		Color:     mgl32.Vec4(ui.bulbColor),
		Position:  mgl32.Vec3(ui.bulbPosition),
		Linear:    ui.bulbLinear,
		Quadratic: ui.bulbQuadratic,
	})

	set := [2]func(lighting.SpotLight){l.SetSpotLightOne, l.SetSpotLightTwo}
	for i, s := range ui.spots {
		set[i](lighting.SpotLight{
			Color:    mgl32.Vec4(s.color),
			Position: mgl32.Vec3(s.position),
			Direction: lighting.DirectionVector(
				mgl32.DegToRad(s.direction[0]),
				mgl32.DegToRad(s.direction[1]),
			),
			Linear:      s.linear,
			Quadratic:   s.quadratic,
			CutOff:      mgl32.DegToRad(s.cutOff),
			OuterCutOff: mgl32.DegToRad(s.outerCut),
		})
	}
}

// drawOverlay lays out the viewport and control panel windows and applies
// any edits to the lights and scene.
func (a *App) drawOverlay() {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	viewportWidth := workSize.X - controlPanelWidth

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(viewportWidth, workSize.Y))
	if imgui.BeginV("Viewport", nil, flags) {
		a.drawViewportImage()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+viewportWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(controlPanelWidth, workSize.Y))
	if imgui.BeginV("Controls", nil, flags) {
		a.drawControls()
	}
	imgui.End()

	a.ui.applyToLights(a.lights)
}

// drawViewportImage resizes the framebuffer to the available region and
// shows its color texture with V flipped, since GL renders bottom-up.
func (a *App) drawViewportImage() {
	avail := imgui.ContentRegionAvail()
	if avail.X >= 1 && avail.Y >= 1 {
		a.fb.Resize(int32(avail.X), int32(avail.Y))
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(a.fb.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		avail,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
	a.ui.viewportHovered = imgui.IsItemHovered()
}

func (a *App) drawControls() {
	io := imgui.CurrentIO()
	imgui.Text(fmt.Sprintf("%.1f FPS (%.2f ms)", io.Framerate(), 1000/io.Framerate()))
	imgui.Text(fmt.Sprintf("%d batches, %d draws, %d instances",
		a.stats.Batches, a.stats.DrawCalls, a.stats.Instances))
	imgui.Separator()

	if imgui.Checkbox("Drive vehicle", &a.ui.driveVehicle) {
		a.setVehicleControl(a.ui.driveVehicle)
	}
	imgui.TextDisabled("(WASD + right-drag flies, arrows drive)")
	imgui.Separator()

	if imgui.CollapsingHeaderBoolPtr("Sun", nil) {
		imgui.ColorEdit4("Color##sun", &a.ui.sunColor)
		imgui.DragFloat2("Azimuth/Elevation##sun", &a.ui.sunDirection)
	}

	if imgui.CollapsingHeaderBoolPtr("Bulb", nil) {
		imgui.ColorEdit4("Color##bulb", &a.ui.bulbColor)
		imgui.DragFloat3("Position##bulb", &a.ui.bulbPosition)
		imgui.DragFloatV("Linear##bulb", &a.ui.bulbLinear, 0.005, 0, 1, "%.3f", imgui.SliderFlagsNone)
		imgui.DragFloatV("Quadratic##bulb", &a.ui.bulbQuadratic, 0.005, 0, 1, "%.3f", imgui.SliderFlagsNone)
	}

	for i := range a.ui.spots {
		label := fmt.Sprintf("Spotlight %d", i+1)
		if imgui.CollapsingHeaderBoolPtr(label, nil) {
			s := &a.ui.spots[i]
			imgui.ColorEdit4(fmt.Sprintf("Color##spot%d", i), &s.color)
			imgui.DragFloat3(fmt.Sprintf("Position##spot%d", i), &s.position)
			imgui.DragFloat2(fmt.Sprintf("Azimuth/Elevation##spot%d", i), &s.direction)
			imgui.DragFloatV(fmt.Sprintf("Linear##spot%d", i), &s.linear, 0.005, 0, 1, "%.3f", imgui.SliderFlagsNone)
			imgui.DragFloatV(fmt.Sprintf("Quadratic##spot%d", i), &s.quadratic, 0.005, 0, 1, "%.3f", imgui.SliderFlagsNone)
			imgui.DragFloatV(fmt.Sprintf("Cutoff##spot%d", i), &s.cutOff, 0.1, 0, 89, "%.1f deg", imgui.SliderFlagsNone)
			imgui.DragFloatV(fmt.Sprintf("Outer cutoff##spot%d", i), &s.outerCut, 0.1, 0, 89, "%.1f deg", imgui.SliderFlagsNone)
		}
	}

	if imgui.CollapsingHeaderBoolPtr("Scene", nil) {
		imgui.ColorEdit3("Background", &a.ui.background)
		imgui.Checkbox("Light gizmos", &a.ui.showGizmos)
		imgui.Checkbox("Skybox", &a.ui.showSkybox)
	}

	imgui.Separator()
	if imgui.Button("Screenshot") {
		a.saveScreenshot()
	}
	imgui.SameLine()
	if imgui.Button("Save settings") {
		a.saveSettings()
	}
}

// saveSettings writes the toggles that survive restarts back to the config
// file. Light values are session state and stay out of it.
func (a *App) saveSettings() {
	a.cfg.Scene.Background = a.ui.background
	a.cfg.Scene.LightGizmos = a.ui.showGizmos
	a.cfg.Scene.Skybox = a.ui.showSkybox
	if err := a.cfg.Save(); err != nil {
		logger.Error("save settings", zap.Error(err))
		return
	}
	logger.Info("settings saved")
}

// setVehicleControl switches between the free camera and the chase camera
// parented to the vehicle, handing input to the vehicle in chase mode.
func (a *App) setVehicleControl(drive bool) {
	if drive {
		vehicle, ok := a.graph.FindByName(estate.VehicleName)
		if !ok {
			logger.Warn("vehicle node missing")
			a.ui.driveVehicle = false
			return
		}
		chase, ok := a.graph.FindByName(estate.ChaseCameraName)
		if !ok {
			logger.Warn("chase camera missing")
			a.ui.driveVehicle = false
			return
		}
		if err := a.graph.SetVehicleControlled(vehicle); err != nil {
			logger.Error("vehicle control", zap.Error(err))
			return
		}
		if err := a.graph.ActivateCamera(chase); err != nil {
			logger.Error("camera switch", zap.Error(err))
		}
		return
	}

	a.graph.SetVehicleControlled(nil)
	if free, ok := a.graph.FindByName(estate.FreeCameraName); ok {
		if err := a.graph.ActivateCamera(free); err != nil {
			logger.Error("camera switch", zap.Error(err))
		}
	}
}

func (a *App) saveScreenshot() {
	w, h := a.fb.Size()
	path, err := debug.SaveScreenshot(a.ui.screenshotDir, a.fb.ReadPixels(), int(w), int(h))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func vec3Array(v mgl32.Vec3) [3]float32 { return [3]float32{v.X(), v.Y(), v.Z()} }

func vec4Array(v mgl32.Vec4) [4]float32 { return [4]float32{v.X(), v.Y(), v.Z(), v.W()} }

// directionAngles inverts DirectionVector back to azimuth/elevation degrees
// for the editors.
func directionAngles(dir mgl32.Vec3) (azimuth, elevation float32) {
	y := float64(dir.Y())
	if y > 1 {
		y = 1
	}
	if y < -1 {
		y = -1
	}
	el := float32(math.Asin(y))
	az := float32(math.Atan2(float64(dir.X()), float64(dir.Z())))
	return mgl32.RadToDeg(az), mgl32.RadToDeg(el)
}
