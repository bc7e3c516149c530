package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestActivateCameraExclusive(t *testing.T) {
	g := NewGraph()
	camA := g.Root().AddChild(NewCamera("a", DefaultCameraRig()))
	camB := g.Root().AddChild(NewCamera("b", DefaultCameraRig()))

	if err := g.ActivateCamera(camA); err != nil {
		t.Fatalf("activate a: %v", err)
	}
	if !camA.Camera().Active() {
		t.Fatal("camera a not active after activation")
	}

	if err := g.ActivateCamera(camB); err != nil {
		t.Fatalf("activate b: %v", err)
	}
	if camA.Camera().Active() {
		t.Fatal("camera a still active after b was activated")
	}
	if !camB.Camera().Active() {
		t.Fatal("camera b not active after activation")
	}

	active, ok := g.ActiveCamera()
	if !ok || active != camB {
		t.Fatalf("ActiveCamera = %v, %v, want camera b", active, ok)
	}
}

func TestActivateCameraRejectsWrongKind(t *testing.T) {
	g := NewGraph()
	group := g.Root().AddChild(NewGroup("not-a-camera"))
	if err := g.ActivateCamera(group); err == nil {
		t.Fatal("activating a group node succeeded")
	}
	if err := g.ActivateCamera(nil); err == nil {
		t.Fatal("activating nil succeeded")
	}
}

func TestActivateCameraRejectsDetachedNode(t *testing.T) {
	g := NewGraph()
	loose := NewCamera("loose", DefaultCameraRig())
	if err := g.ActivateCamera(loose); err == nil {
		t.Fatal("activating a detached camera succeeded")
	}
}

func TestViewWithoutCamera(t *testing.T) {
	g := NewGraph()
	if _, err := g.View(); !errors.Is(err, ErrNoActiveCamera) {
		t.Fatalf("View error = %v, want ErrNoActiveCamera", err)
	}
	if _, err := g.Projection(1.5); !errors.Is(err, ErrNoActiveCamera) {
		t.Fatalf("Projection error = %v, want ErrNoActiveCamera", err)
	}
	if _, err := g.CameraPosition(); !errors.Is(err, ErrNoActiveCamera) {
		t.Fatalf("CameraPosition error = %v, want ErrNoActiveCamera", err)
	}
}

func TestViewInvertsCameraWorld(t *testing.T) {
	g := NewGraph()
	cam := g.Root().AddChild(NewCamera("cam", DefaultCameraRig()))
	cam.Transform().SetPosition(mgl32.Vec3{0, 2, 10})
	if err := g.ActivateCamera(cam); err != nil {
		t.Fatal(err)
	}
	g.CalculateWorldTransforms()

	view, err := g.View()
	if err != nil {
		t.Fatal(err)
	}
	// The view matrix maps the camera's own position to the origin.
	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 2, 10}, view)
	if !vec3Near(origin, mgl32.Vec3{}) {
		t.Fatalf("view * cameraPos = %v, want origin", origin)
	}
}

func TestVehicleControlExclusive(t *testing.T) {
	g := NewGraph()
	vA := g.Root().AddChild(NewVehicle("a", nil, nil, DefaultVehicleState()))
	vB := g.Root().AddChild(NewVehicle("b", nil, nil, DefaultVehicleState()))

	if err := g.SetVehicleControlled(vA); err != nil {
		t.Fatal(err)
	}
	if err := g.SetVehicleControlled(vB); err != nil {
		t.Fatal(err)
	}
	if vA.Vehicle().Controlled() {
		t.Fatal("vehicle a still controlled after handoff")
	}
	if !vB.Vehicle().Controlled() {
		t.Fatal("vehicle b not controlled")
	}

	if err := g.SetVehicleControlled(nil); err != nil {
		t.Fatal(err)
	}
	if vB.Vehicle().Controlled() {
		t.Fatal("vehicle b still controlled after release")
	}
	if _, ok := g.ControlledVehicle(); ok {
		t.Fatal("ControlledVehicle reports a vehicle after release")
	}
}

func TestFreeLookCameraMoves(t *testing.T) {
	g := NewGraph()
	rig := DefaultCameraRig()
	rig.MoveSpeed = 2
	cam := g.Root().AddChild(NewCamera("cam", rig))
	if err := g.ActivateCamera(cam); err != nil {
		t.Fatal(err)
	}

	ctx := &FrameContext{
		Input: InputState{Move: mgl32.Vec3{0, 0, 1}},
		Delta: 0.5,
	}
	g.Update(ctx)
	g.CalculateWorldTransforms()

	// Forward movement with zero yaw heads down -Z at MoveSpeed * Delta.
	if got := cam.Transform().WorldPosition(); !vec3Near(got, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("camera position = %v, want (0,0,-1)", got)
	}
}

func TestInactiveCameraIgnoresInput(t *testing.T) {
	g := NewGraph()
	cam := g.Root().AddChild(NewCamera("cam", DefaultCameraRig()))

	ctx := &FrameContext{
		Input: InputState{Move: mgl32.Vec3{0, 0, 1}, Look: mgl32.Vec2{1, 1}},
		Delta: 0.5,
	}
	g.Update(ctx)
	g.CalculateWorldTransforms()

	if got := cam.Transform().WorldPosition(); !vec3Near(got, mgl32.Vec3{}) {
		t.Fatalf("inactive camera moved to %v", got)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	g := NewGraph()
	cam := g.Root().AddChild(NewCamera("cam", DefaultCameraRig()))
	if err := g.ActivateCamera(cam); err != nil {
		t.Fatal(err)
	}

	ctx := &FrameContext{
		Input: InputState{Look: mgl32.Vec2{0, -10}},
		Delta: 0.016,
	}
	g.Update(ctx)

	if p := cam.Camera().Pitch; p > maxPitch || p < -maxPitch {
		t.Fatalf("pitch %v escaped clamp %v", p, maxPitch)
	}
}

func TestVehicleAutopilotAdvances(t *testing.T) {
	g := NewGraph()
	v := g.Root().AddChild(NewVehicle("bike", nil, nil, DefaultVehicleState()))

	ctx := &FrameContext{Delta: 0.1}
	for i := 0; i < 10; i++ {
		g.Update(ctx)
	}
	g.CalculateWorldTransforms()

	if v.Vehicle().Heading == 0 {
		t.Fatal("autopilot heading never changed")
	}
	if vec3Near(v.Transform().WorldPosition(), mgl32.Vec3{}) {
		t.Fatal("autopilot vehicle never moved")
	}
}

func TestVehicleControlledFollowsThrottle(t *testing.T) {
	g := NewGraph()
	v := g.Root().AddChild(NewVehicle("bike", nil, nil, DefaultVehicleState()))
	if err := g.SetVehicleControlled(v); err != nil {
		t.Fatal(err)
	}

	ctx := &FrameContext{Input: InputState{Throttle: 1}, Delta: 0.1}
	for i := 0; i < 50; i++ {
		g.Update(ctx)
	}

	st := v.Vehicle()
	if st.Speed <= 0 {
		t.Fatalf("speed = %v after full throttle", st.Speed)
	}
	if st.Speed > st.MaxSpeed+epsilon {
		t.Fatalf("speed %v exceeded max %v", st.Speed, st.MaxSpeed)
	}
	if st.Heading != 0 {
		t.Fatalf("heading drifted to %v with zero steer", st.Heading)
	}
}

func TestGraphFindDelegates(t *testing.T) {
	g := NewGraph()
	want := g.Root().AddChild(NewGroup("inner")).AddChild(NewGroup("deep"))

	got, ok := g.FindByName("deep")
	if !ok || got != want {
		t.Fatalf("FindByName(deep) = %v, %v", got, ok)
	}
	if _, ok := g.Find(func(n *Node) bool { return n.Kind() == KindVehicle }); ok {
		t.Fatal("found a vehicle in a graph without one")
	}
}
