package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSteerAheadPushesAlongBow(t *testing.T) {
	lin, ang := Steer{Ahead: true}.Impulses(mgl32.QuatIdent(), 1)
	if lin.Z() >= 0 || lin.X() != 0 {
		t.Fatalf("expected impulse toward -Z, got %v", lin)
	}
	if math.Abs(float64(lin.Len()-ThrustImpulse)) > 1e-5 {
		t.Fatalf("expected |impulse|=%g, got %g", ThrustImpulse, lin.Len())
	}
	if ang != (mgl32.Vec3{}) {
		t.Fatalf("expected no turn, got %v", ang)
	}
}

func TestSteerFollowsHeading(t *testing.T) {
	rot := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	lin, _ := Steer{Ahead: true}.Impulses(rot, 1)
	// Bow (-Z) turned 90 degrees left points at -X.
	if lin.X() >= -ThrustImpulse*0.99 {
		t.Fatalf("expected impulse toward -X, got %v", lin)
	}
}

func TestSteerTurnAndCancel(t *testing.T) {
	_, ang := Steer{Left: true}.Impulses(mgl32.QuatIdent(), 0.5)
	if ang.Y() != TurnImpulse*0.5 {
		t.Fatalf("expected left turn %g, got %v", TurnImpulse*0.5, ang)
	}
	lin, ang := Steer{Left: true, Right: true, Ahead: true, Astern: true}.Impulses(mgl32.QuatIdent(), 1)
	if lin != (mgl32.Vec3{}) || ang != (mgl32.Vec3{}) {
		t.Fatalf("expected opposing keys to cancel, got %v %v", lin, ang)
	}
}

func TestSteerIdle(t *testing.T) {
	if !(Steer{}).Idle() || (Steer{Astern: true}).Idle() {
		t.Fatalf("unexpected idle behaviour")
	}
}
