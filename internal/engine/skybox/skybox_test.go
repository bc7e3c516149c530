package skybox

import "testing"

func TestGradientFaceTopIsZenith(t *testing.T) {
	horizon := [3]uint8{200, 220, 255}
	zenith := [3]uint8{30, 80, 200}
	ground := [3]uint8{60, 60, 60}

	// Center of the +Y face points straight up.
	pixels := gradientFace(2, horizon, zenith, ground)
	i := ((faceSize/2)*faceSize + faceSize/2) * 4
	got := [3]uint8{pixels[i], pixels[i+1], pixels[i+2]}

	for c := 0; c < 3; c++ {
		diff := int(got[c]) - int(zenith[c])
		if diff < -8 || diff > 8 {
			t.Fatalf("+Y center = %v, want near zenith %v", got, zenith)
		}
	}
}

func TestGradientFaceBottomIsGround(t *testing.T) {
	horizon := [3]uint8{200, 220, 255}
	zenith := [3]uint8{30, 80, 200}
	ground := [3]uint8{60, 60, 60}

	pixels := gradientFace(3, horizon, zenith, ground)
	i := ((faceSize/2)*faceSize + faceSize/2) * 4
	got := [3]uint8{pixels[i], pixels[i+1], pixels[i+2]}

	for c := 0; c < 3; c++ {
		diff := int(got[c]) - int(ground[c])
		if diff < -8 || diff > 8 {
			t.Fatalf("-Y center = %v, want near ground %v", got, ground)
		}
	}
}

func TestFaceDirectionsAreUnitAxisAligned(t *testing.T) {
	// The center of every face points along its axis.
	want := [6][3]float32{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for face := 0; face < 6; face++ {
		dir := faceDirection(face, 0, 0).Normalize()
		for i := 0; i < 3; i++ {
			if diff := dir[i] - want[face][i]; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("face %d center direction = %v, want %v", face, dir, want[face])
			}
		}
	}
}

func TestLerpColorClamps(t *testing.T) {
	a := [3]uint8{0, 0, 0}
	b := [3]uint8{255, 255, 255}
	if got := lerpColor(a, b, -1); got != a {
		t.Fatalf("lerp(-1) = %v, want %v", got, a)
	}
	if got := lerpColor(a, b, 2); got != b {
		t.Fatalf("lerp(2) = %v, want %v", got, b)
	}
	if got := lerpColor(a, b, 0.5); got[0] < 120 || got[0] > 135 {
		t.Fatalf("lerp(0.5) = %v, want midpoint", got)
	}
}
