package sim

import "github.com/go-gl/mathgl/mgl32"

// Per-frame impulses while a key is held, scaled by frame time.
const (
	TurnImpulse   float32 = 4.0  // angular, about +Y
	ThrustImpulse float32 = 12.0 // linear, along the bow
)

// Forward is the local bow direction.
var Forward = mgl32.Vec3{0, 0, -1}

// Steer is the held state of the four direction keys.
type Steer struct {
	Left, Right, Ahead, Astern bool
}

func (s Steer) Idle() bool {
	return !s.Left && !s.Right && !s.Ahead && !s.Astern
}

// Impulses returns the linear and angular impulse for one frame of dt
// seconds. Opposing keys cancel.
func (s Steer) Impulses(rotation mgl32.Quat, dt float32) (linear, angular mgl32.Vec3) {
	var turn, thrust float32
	if s.Left {
		turn++
	}
	if s.Right {
		turn--
	}
	if s.Ahead {
		thrust++
	}
	if s.Astern {
		thrust--
	}
	bow := rotation.Rotate(Forward)
	bow[1] = 0
	if l := bow.Len(); l > 0 {
		bow = bow.Mul(1 / l)
	}
	linear = bow.Mul(thrust * ThrustImpulse * dt)
	angular = mgl32.Vec3{0, turn * TurnImpulse * dt, 0}
	return linear, angular
}
