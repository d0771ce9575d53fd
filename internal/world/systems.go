package world

import (
	"github.com/mlange-42/arche/generic"
	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/physics"
	"github.com/appengine-ltd/seilespill/internal/sim"
)

// steerSystem turns held keys into impulses on the player boat.
type steerSystem struct {
	scene  *Scene
	filter *generic.Filter2[physics.Pose, physics.Body]
}

func (s *steerSystem) Phase() Phase { return PhaseInput }

func (s *steerSystem) Update(dt float32) {
	steer := s.scene.Steer
	q := s.filter.Query(&s.scene.World)
	for q.Next() {
		pose, body := q.Get()
		if steer.Idle() {
			continue
		}
		lin, ang := steer.Impulses(pose.Rotation, dt)
		body.ApplyImpulse(lin)
		body.ApplyAngularImpulse(ang)
	}
}

// waterSystem applies buoyancy and drag to floating bodies.
type waterSystem struct {
	scene  *Scene
	filter *generic.Filter2[physics.Pose, physics.Body]
}

func (s *waterSystem) Phase() Phase { return PhaseForces }

func (s *waterSystem) Update(dt float32) {
	cfg := s.scene.tuning()
	q := s.filter.Query(&s.scene.World)
	for q.Next() {
		pose, body := q.Get()
		wf := sim.Water(pose.Position, body.Velocity, body.AngularVelocity, body.Mass, dt, cfg)
		body.AddForce(wf.Force)
		body.AngularVelocity = body.AngularVelocity.Add(wf.AngularVelDelta)
	}
}

// motionSystem integrates bodies and keeps hulls out of island solids.
type motionSystem struct {
	scene  *Scene
	filter *generic.Filter3[physics.Pose, physics.Body, Hull]
}

func (s *motionSystem) Phase() Phase { return PhasePhysics }

func (s *motionSystem) Update(dt float32) {
	sp := s.scene.Space
	q := s.filter.Query(&s.scene.World)
	for q.Next() {
		pose, body, hull := q.Get()
		prev := pose.Position
		sp.Move(hull.Collider, prev)
		physics.Integrate(pose, body, s.scene.Gravity, dt)

		dx := pose.Position.X() - prev.X()
		dz := pose.Position.Z() - prev.Z()
		if (dx != 0 || dz != 0) && sp.Blocked(hull.Collider, dx, dz) {
			pose.Position[0] = prev.X()
			pose.Position[2] = prev.Z()
			body.Velocity[0] = 0
			body.Velocity[2] = 0
		}
		sp.Move(hull.Collider, pose.Position)
	}
}

// contactSystem diffs the player's sensor overlaps into start/end events.
type contactSystem struct {
	scene  *Scene
	filter *generic.Filter1[Hull]
}

func (s *contactSystem) Phase() Phase { return PhaseCollision }

func (s *contactSystem) Update(float32) {
	sc := s.scene
	sc.touching, sc.started, sc.ended = nil, nil, nil
	q := s.filter.Query(&sc.World)
	for q.Next() {
		hull := q.Get()
		sc.touching = sc.Space.Sensors(hull.Collider)
		sc.started, sc.ended = sc.contacts.Diff(sc.touching)
	}
	for _, name := range sc.ended {
		Emit(sc.Bus, ContactEnded{Sensor: name})
	}
	for _, name := range sc.started {
		Emit(sc.Bus, ContactStarted{Sensor: name})
	}
}

// dockSystem feeds contacts and horizontal speed to the dock state machine.
type dockSystem struct {
	scene  *Scene
	filter *generic.Filter2[physics.Body, Docking]
}

func (s *dockSystem) Phase() Phase { return PhaseDocking }

func (s *dockSystem) Update(float32) {
	sc := s.scene
	q := s.filter.Query(&sc.World)
	for q.Next() {
		body, dock := q.Get()
		before := dock.State()
		for _, name := range sc.ended {
			target := dock.State().Target
			s.signal(dock.Leave(name), target)
		}
		for _, name := range sc.started {
			dock.Enter(name)
		}
		// Leaving the target while still inside another sensor falls back
		// to that one; no new contact start will come for it.
		if dock.State().Phase == sim.TooFar && len(sc.touching) > 0 {
			dock.Enter(sc.touching[0])
		}
		s.signal(dock.Update(sim.LengthXZ(body.Velocity)), dock.State().Target)
		if after := dock.State(); after != before {
			sc.log.Debug("dock state changed", zap.Stringer("from", before), zap.Stringer("to", after))
		}
	}
}

func (s *dockSystem) signal(sig sim.DockSignal, island string) {
	switch sig {
	case sim.SignalShow:
		Emit(s.scene.Bus, DockShown{Island: island})
	case sim.SignalHide:
		Emit(s.scene.Bus, DockHidden{Island: island})
	}
}

// cameraSystem keeps the camera at a fixed offset from the player.
type cameraSystem struct {
	scene *Scene
}

func (s *cameraSystem) Phase() Phase { return PhaseCamera }

func (s *cameraSystem) Update(float32) {
	s.scene.follow()
}
