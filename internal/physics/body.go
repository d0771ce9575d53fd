package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Gravity is the default world acceleration.
var Gravity = mgl32.Vec3{0, -9.81, 0}

// Pose is a body's placement in the world.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewPose(pos mgl32.Vec3, yaw float32) Pose {
	return Pose{Position: pos, Rotation: mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})}
}

// Yaw is the heading about +Y in radians.
func (p Pose) Yaw() float32 {
	bow := p.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	return float32(math.Atan2(float64(-bow.X()), float64(-bow.Z())))
}

// Body is a dynamic rigid body. Forces accumulate between steps and are
// cleared by Integrate; impulses change velocity immediately.
type Body struct {
	Mass            float32
	Inertia         float32 // scalar, about every axis
	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3
	GravityScale    float32

	force mgl32.Vec3
}

func NewBody(mass, inertia float32) Body {
	return Body{Mass: mass, Inertia: inertia, GravityScale: 1}
}

func (b *Body) AddForce(f mgl32.Vec3) {
	b.force = b.force.Add(f)
}

func (b *Body) ApplyImpulse(j mgl32.Vec3) {
	if b.Mass <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(j.Mul(1 / b.Mass))
}

func (b *Body) ApplyAngularImpulse(j mgl32.Vec3) {
	if b.Inertia <= 0 {
		return
	}
	b.AngularVelocity = b.AngularVelocity.Add(j.Mul(1 / b.Inertia))
}

// PendingForce is the force accumulated since the last step.
func (b *Body) PendingForce() mgl32.Vec3 {
	return b.force
}

// Integrate advances pose and body by dt with semi-implicit Euler: velocities
// first, then positions from the new velocities.
func Integrate(p *Pose, b *Body, gravity mgl32.Vec3, dt float32) {
	if dt <= 0 {
		return
	}
	if b.Mass > 0 {
		accel := b.force.Mul(1 / b.Mass).Add(gravity.Mul(b.GravityScale))
		b.Velocity = b.Velocity.Add(accel.Mul(dt))
	}
	b.force = mgl32.Vec3{}

	p.Position = p.Position.Add(b.Velocity.Mul(dt))

	w := b.AngularVelocity
	if w.Len() == 0 {
		return
	}
	spin := mgl32.Quat{W: 0, V: w}.Mul(p.Rotation).Scale(0.5 * dt)
	p.Rotation = p.Rotation.Add(spin).Normalize()
}
