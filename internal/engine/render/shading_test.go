package render

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/engine/render/shaders"
)

// spotConeIntensity mirrors the model shader's cone term: the
// fragment-to-light vector compared against the negated beam axis, with a
// soft edge between the inner and outer cutoff cosines.
func spotConeIntensity(s lighting.SpotLight, fragPos mgl32.Vec3) float32 {
	lightDir := s.Position.Sub(fragPos).Normalize()
	theta := lightDir.Dot(s.Direction.Normalize().Mul(-1))
	eps := s.CosCutOff() - s.CosOuterCutOff()
	intensity := (theta - s.CosOuterCutOff()) / eps
	if intensity < 0 {
		return 0
	}
	if intensity > 1 {
		return 1
	}
	return intensity
}

func TestSpotConeCoversBeamAxis(t *testing.T) {
	l := lighting.New()

	for i, s := range []lighting.SpotLight{l.SpotLightOne(), l.SpotLightTwo()} {
		// A fragment straight down the beam axis sits in the inner cone.
		onAxis := s.Position.Add(s.Direction.Normalize().Mul(5))
		if got := spotConeIntensity(s, onAxis); got != 1 {
			t.Errorf("spot %d: on-axis intensity = %v, want 1", i+1, got)
		}

		// Behind the light the cone contributes nothing.
		behind := s.Position.Sub(s.Direction.Normalize().Mul(5))
		if got := spotConeIntensity(s, behind); got != 0 {
			t.Errorf("spot %d: behind-light intensity = %v, want 0", i+1, got)
		}
	}
}

func TestSpotConeReachesSceneVolume(t *testing.T) {
	l := lighting.New()
	s := l.SpotLightOne()

	// The default spots aim down into the scene; somewhere in the ground
	// volume the cone must be lit.
	var max float32
	for x := float32(-100); x <= 100; x += 2 {
		for z := float32(-100); z <= 100; z += 2 {
			for _, y := range []float32{0, 1.5, 3} {
				if got := spotConeIntensity(s, mgl32.Vec3{x, y, z}); got > max {
					max = got
				}
			}
		}
	}
	if max == 0 {
		t.Fatal("default spotlight lights nothing in the scene volume")
	}
}

func TestModelShaderSpotConeConvention(t *testing.T) {
	// The shader must compare the fragment-to-light vector against the
	// negated beam axis, matching spotConeIntensity above.
	if !strings.Contains(shaders.ModelFrag, "normalize(-uSpots[i].direction)") {
		t.Fatal("model shader cone test does not negate the spot direction")
	}
}
