package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func matsEqual(a, b mgl32.Mat4) bool {
	for i := 0; i < 16; i++ {
		if math.Abs(float64(a[i]-b[i])) > epsilon {
			return false
		}
	}
	return true
}

func vecsEqual(a, b mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(float64(a[i]-b[i])) > epsilon {
			return false
		}
	}
	return true
}

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	if !matsEqual(tr.Local(), mgl32.Ident4()) {
		t.Errorf("fresh transform local matrix should be identity, got %v", tr.Local())
	}
	if tr.Scale() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("fresh transform scale should be (1,1,1), got %v", tr.Scale())
	}
}

func TestLocalComposesTRS(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{1, 2, 3})
	tr.SetRotation(mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0}))
	tr.SetScale(mgl32.Vec3{2, 2, 2})

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0}).Mat4()).
		Mul4(mgl32.Scale3D(2, 2, 2))

	if !matsEqual(tr.Local(), want) {
		t.Errorf("local matrix mismatch:\ngot  %v\nwant %v", tr.Local(), want)
	}
}

func TestLocalCacheInvalidation(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{5, 0, 0})
	first := tr.Local()

	// No mutation: same matrix.
	if !matsEqual(tr.Local(), first) {
		t.Error("Local() changed without a mutation")
	}

	tr.SetPosition(mgl32.Vec3{0, 5, 0})
	second := tr.Local()
	if matsEqual(first, second) {
		t.Error("Local() did not pick up the position mutation")
	}
	if second[12] != 0 || second[13] != 5 {
		t.Errorf("expected translation (0,5,0), got (%f,%f,%f)", second[12], second[13], second[14])
	}
}

func TestComputeWorld(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{1, 0, 0})

	parent := mgl32.Translate3D(0, 0, 10)
	world := tr.ComputeWorld(parent)

	want := parent.Mul4(tr.Local())
	if !matsEqual(world, want) {
		t.Errorf("world matrix mismatch:\ngot  %v\nwant %v", world, want)
	}
	if !vecsEqual(tr.WorldPosition(), mgl32.Vec3{1, 0, 10}) {
		t.Errorf("world position: got %v, want (1,0,10)", tr.WorldPosition())
	}
}

func TestWorldIsStaleUntilRecompute(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{1, 0, 0})
	tr.ComputeWorld(mgl32.Ident4())

	// Mutate locally: World() keeps the old value until the next pass.
	tr.SetPosition(mgl32.Vec3{9, 9, 9})
	if !vecsEqual(tr.WorldPosition(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("world should be stale before recompute, got %v", tr.WorldPosition())
	}

	tr.ComputeWorld(mgl32.Ident4())
	if !vecsEqual(tr.WorldPosition(), mgl32.Vec3{9, 9, 9}) {
		t.Errorf("world should be fresh after recompute, got %v", tr.WorldPosition())
	}
}

func TestRotateAccumulates(t *testing.T) {
	tr := New()
	tr.Rotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	tr.Rotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	tr.ComputeWorld(mgl32.Ident4())

	// Two quarter turns about Y map +X to -X.
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.World())
	if !vecsEqual(p, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("two 90 degree rotations: got %v, want (-1,0,0)", p)
	}
}
