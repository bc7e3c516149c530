package app

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/lighting"
)

func TestDirectionAnglesRoundTrip(t *testing.T) {
	cases := []struct{ az, el float32 }{
		{0, 0},
		{-30, 0},
		{-140, 40},
		{90, -30},
		{45, 60},
	}
	for _, c := range cases {
		dir := lighting.DirectionVector(mgl32.DegToRad(c.az), mgl32.DegToRad(c.el))
		az, el := directionAngles(dir)
		if diff := math.Abs(float64(az - c.az)); diff > 0.01 {
			t.Errorf("azimuth %v round-tripped to %v", c.az, az)
		}
		if diff := math.Abs(float64(el - c.el)); diff > 0.01 {
			t.Errorf("elevation %v round-tripped to %v", c.el, el)
		}
	}
}

func TestLightEditorsRoundTrip(t *testing.T) {
	lights := lighting.New()
	var ui overlayState
	ui.syncFromLights(lights)

	before := lights.Sun()
	spotBefore := lights.SpotLightTwo()

	// Applying unedited state must not drift the lights.
	ui.applyToLights(lights)

	after := lights.Sun()
	if after.Direction.Sub(before.Direction).Len() > 1e-4 {
		t.Fatalf("sun direction drifted: %v -> %v", before.Direction, after.Direction)
	}
	if after.Color != before.Color {
		t.Fatalf("sun color drifted: %v -> %v", before.Color, after.Color)
	}

	spotAfter := lights.SpotLightTwo()
	if math.Abs(float64(spotAfter.CutOff-spotBefore.CutOff)) > 1e-4 {
		t.Fatalf("spot cutoff drifted: %v -> %v", spotBefore.CutOff, spotAfter.CutOff)
	}
	if spotAfter.Direction.Sub(spotBefore.Direction).Len() > 1e-4 {
		t.Fatalf("spot direction drifted: %v -> %v", spotBefore.Direction, spotAfter.Direction)
	}
}

func TestEditedSunDirectionApplies(t *testing.T) {
	lights := lighting.New()
	var ui overlayState
	ui.syncFromLights(lights)

	ui.sunDirection = [2]float32{90, 0}
	ui.applyToLights(lights)

	want := mgl32.Vec3{1, 0, 0}
	if got := lights.Sun().Direction; got.Sub(want).Len() > 1e-5 {
		t.Fatalf("sun direction = %v, want %v", got, want)
	}
}
