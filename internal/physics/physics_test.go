package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIntegrateFreeFall(t *testing.T) {
	p := NewPose(mgl32.Vec3{0, 10, 0}, 0)
	b := NewBody(2, 1)
	for i := 0; i < 60; i++ {
		Integrate(&p, &b, Gravity, 1.0/60)
	}
	if math.Abs(float64(b.Velocity.Y()+9.81)) > 1e-3 {
		t.Fatalf("expected vy=-9.81 after one second, got %g", b.Velocity.Y())
	}
	if p.Position.Y() >= 10-4.5 || p.Position.Y() < 10-5.5 {
		t.Fatalf("expected roughly 5m drop, got y=%g", p.Position.Y())
	}
}

func TestIntegrateClearsForces(t *testing.T) {
	p := NewPose(mgl32.Vec3{}, 0)
	b := NewBody(1, 1)
	b.GravityScale = 0
	b.AddForce(mgl32.Vec3{10, 0, 0})
	Integrate(&p, &b, Gravity, 0.1)
	if b.PendingForce() != (mgl32.Vec3{}) {
		t.Fatalf("expected force accumulator cleared")
	}
	if math.Abs(float64(b.Velocity.X()-1)) > 1e-5 {
		t.Fatalf("expected vx=1, got %g", b.Velocity.X())
	}
}

func TestImpulseScalesByMass(t *testing.T) {
	b := NewBody(4, 2)
	b.ApplyImpulse(mgl32.Vec3{8, 0, 0})
	b.ApplyAngularImpulse(mgl32.Vec3{0, 1, 0})
	if b.Velocity.X() != 2 || b.AngularVelocity.Y() != 0.5 {
		t.Fatalf("unexpected velocities %v %v", b.Velocity, b.AngularVelocity)
	}
}

func TestIntegrateSpinTurnsHeading(t *testing.T) {
	p := NewPose(mgl32.Vec3{}, 0)
	b := NewBody(1, 1)
	b.GravityScale = 0
	b.AngularVelocity = mgl32.Vec3{0, float32(math.Pi / 2), 0}
	for i := 0; i < 1000; i++ {
		Integrate(&p, &b, Gravity, 0.001)
	}
	if math.Abs(float64(p.Yaw())-math.Pi/2) > 0.01 {
		t.Fatalf("expected yaw ~pi/2 after one second, got %g", p.Yaw())
	}
	if math.Abs(float64(p.Rotation.Len()-1)) > 1e-4 {
		t.Fatalf("expected unit quaternion, got len %g", p.Rotation.Len())
	}
}

func TestSpaceSensorsAndSolids(t *testing.T) {
	sp := NewSpace(-100, -100, 200, 200, 4)
	sp.AddSensor("north-dock", mgl32.Vec3{0, 0, -20}, 5, 5)
	sp.AddSolid("north-isle", mgl32.Vec3{0, 0, -30}, 4, 4)
	boat := sp.AddBody("boat", mgl32.Vec3{0, 0, 0}, 1, 2)

	if got := sp.Sensors(boat); len(got) != 0 {
		t.Fatalf("expected no sensors at origin, got %v", got)
	}

	sp.Move(boat, mgl32.Vec3{0, 0, -18})
	got := sp.Sensors(boat)
	if len(got) != 1 || got[0] != "north-dock" {
		t.Fatalf("expected north-dock contact, got %v", got)
	}
	if sp.Blocked(boat, 0, -1) {
		t.Fatalf("expected open water ahead")
	}

	sp.Move(boat, mgl32.Vec3{0, 0, -23})
	if !sp.Blocked(boat, 0, -2) {
		t.Fatalf("expected island to block the move")
	}
	if c := boat.Center(sp); math.Abs(float64(c.Z()+23)) > 1e-4 {
		t.Fatalf("expected center z=-23, got %v", c)
	}
}

func TestBlockedLetsHullBackOutOfSolid(t *testing.T) {
	sp := NewSpace(-100, -100, 200, 200, 4)
	sp.AddSolid("north-isle", mgl32.Vec3{0, 0, -30}, 4, 4)
	boat := sp.AddBody("boat", mgl32.Vec3{0, 0, -30}, 0.6, 1.4)

	if sp.Blocked(boat, 0, 0.1) {
		t.Fatalf("expected a hull inside the solid to move out")
	}
	sp.Move(boat, mgl32.Vec3{1, 0, -27})
	if !sp.Blocked(boat, 0, -0.5) {
		t.Fatalf("expected a move toward the solid's center to be blocked")
	}
	if sp.Blocked(boat, 0.5, 0.5) {
		t.Fatalf("expected a move away from the center to pass")
	}
	sp.Move(boat, mgl32.Vec3{0, 0, -24})
	if sp.Blocked(boat, 0, 1) {
		t.Fatalf("expected a clear hull to move away freely")
	}
}

func TestContactsDiff(t *testing.T) {
	var ct Contacts
	started, ended := ct.Diff([]string{"a"})
	if len(started) != 1 || started[0] != "a" || len(ended) != 0 {
		t.Fatalf("expected start a, got %v %v", started, ended)
	}
	started, ended = ct.Diff([]string{"a", "b"})
	if len(started) != 1 || started[0] != "b" || len(ended) != 0 {
		t.Fatalf("expected start b, got %v %v", started, ended)
	}
	started, ended = ct.Diff(nil)
	if len(started) != 0 || len(ended) != 2 || ended[0] != "a" || ended[1] != "b" {
		t.Fatalf("expected end a,b, got %v %v", started, ended)
	}
}
