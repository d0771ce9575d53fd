// Package sim holds the water forces, docking state machine and steering
// rules. It has no engine or renderer dependency; callers feed it plain
// vectors once per frame.
package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/seilespill/internal/tuning"
)

// WaterLevel is the height of the ocean plane.
const WaterLevel float32 = 0

// LengthXZ is the speed of v projected onto the water plane.
func LengthXZ(v mgl32.Vec3) float32 {
	return mgl32.Vec2{v.X(), v.Z()}.Len()
}

// Buoyancy is the upward force on a body whose reference point is at height
// y. It is zero above the water and grows with depth up to the boat's
// average height, after which it stays at cfg.MaxBuoyancy().
func Buoyancy(y float32, cfg tuning.Values) float32 {
	depth := WaterLevel - y
	if depth <= 0 {
		return 0
	}
	if depth > cfg.AvgBoatHeight {
		depth = cfg.AvgBoatHeight
	}
	return depth * cfg.FloatingC
}

// LinearDrag is the quadratic drag force -drag_c*|v|*v. It is capped at the
// force that would bring the body to rest in one step of length dt, so a
// single step never flips the direction of travel.
func LinearDrag(v mgl32.Vec3, mass, dt float32, cfg tuning.Values) mgl32.Vec3 {
	speed := v.Len()
	if speed == 0 || cfg.DragC <= 0 {
		return mgl32.Vec3{}
	}
	magnitude := cfg.DragC * speed * speed
	if dt > 0 && mass > 0 {
		if stop := mass * speed / dt; magnitude > stop {
			magnitude = stop
		}
	}
	return v.Mul(-magnitude / speed)
}

// AngularDamping is the change in angular velocity for one step: each second
// the body loses drag_ang_c of its spin, never more than all of it.
func AngularDamping(w mgl32.Vec3, dt float32, cfg tuning.Values) mgl32.Vec3 {
	k := cfg.DragAngC * dt
	if k <= 0 {
		return mgl32.Vec3{}
	}
	if k > 1 {
		k = 1
	}
	return w.Mul(-k)
}

// WaterForces bundles the per-step environment contribution for one body.
type WaterForces struct {
	Force           mgl32.Vec3 // applied over dt
	AngularVelDelta mgl32.Vec3 // applied directly
}

// Water computes buoyancy, linear drag and angular damping for a body at
// position pos with linear velocity v and angular velocity w.
func Water(pos, v, w mgl32.Vec3, mass, dt float32, cfg tuning.Values) WaterForces {
	f := LinearDrag(v, mass, dt, cfg)
	f[1] += Buoyancy(pos.Y(), cfg)
	return WaterForces{
		Force:           f,
		AngularVelDelta: AngularDamping(w, dt, cfg),
	}
}
