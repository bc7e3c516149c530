// Package lighting holds the scene's light set: one directional sun, one
// point light and two spotlights. The struct is pure data, mutated by the UI
// and read once per frame by the renderer; last write wins.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight is a sun-style light with a direction and no position.
type DirectionalLight struct {
	Color     mgl32.Vec4
	Direction mgl32.Vec3
}

// PointLight is an omnidirectional light with distance attenuation.
type PointLight struct {
	Color     mgl32.Vec4
	Position  mgl32.Vec3
	Linear    float32
	Quadratic float32
}

// SpotLight is a cone light. CutOff and OuterCutOff are half-angles in
// radians; the renderer uploads their cosines.
type SpotLight struct {
	Color       mgl32.Vec4
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	Linear      float32
	Quadratic   float32
	CutOff      float32
	OuterCutOff float32
}

// CosCutOff returns the cosine of the inner cone half-angle.
func (s *SpotLight) CosCutOff() float32 {
	return float32(math.Cos(float64(s.CutOff)))
}

// CosOuterCutOff returns the cosine of the outer cone half-angle.
func (s *SpotLight) CosOuterCutOff() float32 {
	return float32(math.Cos(float64(s.OuterCutOff)))
}

// Lights is the complete light set consumed by the renderer.
type Lights struct {
	sun          DirectionalLight
	bulb         PointLight
	spotLightOne SpotLight
	spotLightTwo SpotLight
}

// New returns a light set with the viewer's default rig: a white sun aimed
// level, swung 30 degrees left of forward, a warm bulb over the scene
// center, and two angled spotlights.
func New() *Lights {
	return &Lights{
		sun: DirectionalLight{
			Color:     mgl32.Vec4{1, 1, 1, 1},
			Direction: DirectionVector(mgl32.DegToRad(-30), 0),
		},
		bulb: PointLight{
			Color:     mgl32.Vec4{1, 0.9, 0.7, 1},
			Position:  mgl32.Vec3{0, 5, 0},
			Linear:    0.09,
			Quadratic: 0.032,
		},
		spotLightOne: SpotLight{
			Color:       mgl32.Vec4{1, 1, 1, 1},
			Position:    mgl32.Vec3{5, 4, 5},
			Direction:   DirectionVector(mgl32.DegToRad(-30), mgl32.DegToRad(-30)),
			Linear:      0.09,
			Quadratic:   0.032,
			CutOff:      mgl32.DegToRad(12.5),
			OuterCutOff: mgl32.DegToRad(17.5),
		},
		spotLightTwo: SpotLight{
			Color:       mgl32.Vec4{1, 1, 1, 1},
			Position:    mgl32.Vec3{-5, 4, -5},
			Direction:   DirectionVector(mgl32.DegToRad(-140), mgl32.DegToRad(40)),
			Linear:      0.09,
			Quadratic:   0.032,
			CutOff:      mgl32.DegToRad(12.5),
			OuterCutOff: mgl32.DegToRad(17.5),
		},
	}
}

// Sun returns the directional light.
func (l *Lights) Sun() DirectionalLight { return l.sun }

// SetSun replaces the directional light.
func (l *Lights) SetSun(sun DirectionalLight) { l.sun = sun }

// Bulb returns the point light.
func (l *Lights) Bulb() PointLight { return l.bulb }

// SetBulb replaces the point light.
func (l *Lights) SetBulb(bulb PointLight) { l.bulb = bulb }

// SpotLightOne returns the first spotlight.
func (l *Lights) SpotLightOne() SpotLight { return l.spotLightOne }

// SetSpotLightOne replaces the first spotlight.
func (l *Lights) SetSpotLightOne(s SpotLight) { l.spotLightOne = s }

// SpotLightTwo returns the second spotlight.
func (l *Lights) SpotLightTwo() SpotLight { return l.spotLightTwo }

// SetSpotLightTwo replaces the second spotlight.
func (l *Lights) SetSpotLightTwo(s SpotLight) { l.spotLightTwo = s }

// DirectionVector converts azimuth/elevation angles (radians) to a unit
// direction vector. Azimuth rotates around Y measured from +Z, elevation
// rises from the horizontal plane: (0, 0) points straight along +Z.
func DirectionVector(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(azimuth)
	el := float64(elevation)
	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
}
