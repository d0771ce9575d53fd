package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/physics"
	"github.com/appengine-ltd/seilespill/internal/sim"
	"github.com/appengine-ltd/seilespill/internal/tuning"
)

// CameraOffset is where the follow camera sits relative to the player.
var CameraOffset = mgl32.Vec3{0, 12, 6}

// Camera is the follow camera placement.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Scene is the running game world: entities, collision space, schedule and
// event bus.
type Scene struct {
	World   ecs.World
	Space   *physics.Space
	Bus     *Bus
	Camera  Camera
	Steer   sim.Steer
	Gravity mgl32.Vec3
	Layout  *assets.Layout

	tuning func() tuning.Values
	log    *zap.Logger
	runner *Runner
	player ecs.Entity

	poses    generic.Map[physics.Pose]
	bodies   generic.Map[physics.Body]
	docks    generic.Map[Docking]
	contacts physics.Contacts
	touching []string
	started  []string
	ended    []string
}

// NewScene spawns the map, the islands and the player boat from layout.
// values is read every frame so panel edits apply immediately.
func NewScene(layout *assets.Layout, values func() tuning.Values, log *zap.Logger) *Scene {
	b := layout.Bounds
	s := &Scene{
		World:   ecs.NewWorld(),
		Space:   physics.NewSpace(b.MinX, b.MinZ, b.Width, b.Depth, b.Cell),
		Bus:     NewBus(),
		Gravity: physics.Gravity,
		Layout:  layout,
		tuning:  values,
		log:     log,
		runner:  NewRunner(),
	}
	s.poses = generic.NewMap[physics.Pose](&s.World)
	s.bodies = generic.NewMap[physics.Body](&s.World)
	s.docks = generic.NewMap[Docking](&s.World)

	s.spawnMap()
	for _, isl := range layout.Islands {
		s.spawnIsland(isl)
	}
	s.spawnPlayer()

	s.runner.Register(&steerSystem{scene: s, filter: generic.NewFilter2[physics.Pose, physics.Body]().With(generic.T[Player]())})
	s.runner.Register(&waterSystem{scene: s, filter: generic.NewFilter2[physics.Pose, physics.Body]().With(generic.T[Floating]())})
	s.runner.Register(&motionSystem{scene: s, filter: generic.NewFilter3[physics.Pose, physics.Body, Hull]()})
	s.runner.Register(&contactSystem{scene: s, filter: generic.NewFilter1[Hull]().With(generic.T[Player]())})
	s.runner.Register(&dockSystem{scene: s, filter: generic.NewFilter2[physics.Body, Docking]()})
	s.runner.Register(&cameraSystem{scene: s})
	s.follow()
	return s
}

func (s *Scene) spawnMap() {
	m := generic.NewMap2[physics.Pose, Visual](&s.World)
	pose := physics.NewPose(mgl32.Vec3{}, 0)
	m.NewWith(&pose, &Visual{Model: ModelMap})
}

func (s *Scene) spawnIsland(isl assets.Island) {
	pos := vec3(isl.Position)
	info := Island{Name: isl.Name}
	if isl.Solid[0] > 0 && isl.Solid[1] > 0 {
		info.Solid = s.Space.AddSolid(isl.Name, pos, isl.Solid[0], isl.Solid[1])
	}
	dock := pos.Add(vec3(isl.Dock.Offset))
	info.Sensor = s.Space.AddSensor(isl.Name, dock, isl.Dock.HalfExtents[0], isl.Dock.HalfExtents[1])

	m := generic.NewMap2[physics.Pose, Island](&s.World)
	pose := physics.NewPose(pos, 0)
	m.NewWith(&pose, &info)
}

func (s *Scene) spawnPlayer() {
	l := s.Layout
	pos := vec3(l.Spawn.Position)
	pose := physics.NewPose(pos, mgl32.DegToRad(l.Spawn.YawDeg))
	body := physics.NewBody(l.Boat.Mass, l.Boat.Inertia)
	hull := Hull{Collider: s.Space.AddBody("player", pos, l.Boat.HalfExtents[0], l.Boat.HalfExtents[1])}

	m := generic.NewMap7[physics.Pose, physics.Body, Player, Floating, Hull, Docking, Visual](&s.World)
	s.player = m.NewWith(&pose, &body, &Player{}, &Floating{}, &hull, &Docking{}, &Visual{Model: ModelBoat})
	s.log.Debug("player spawned", zap.Float32("x", pos.X()), zap.Float32("z", pos.Z()))
}

// Step runs one frame of dt seconds and delivers the frame's events.
func (s *Scene) Step(dt float32) {
	s.runner.Tick(dt)
	s.Bus.Flush()
}

// Player returns the player's pose and body.
func (s *Scene) Player() (physics.Pose, physics.Body) {
	return *s.poses.Get(s.player), *s.bodies.Get(s.player)
}

// PlayerBody gives mutable access to the player's body.
func (s *Scene) PlayerBody() *physics.Body {
	return s.bodies.Get(s.player)
}

// PlayerPose gives mutable access to the player's pose.
func (s *Scene) PlayerPose() *physics.Pose {
	return s.poses.Get(s.player)
}

// DockState is the player's current docking status.
func (s *Scene) DockState() sim.DockState {
	return s.docks.Get(s.player).State()
}

// Visuals calls fn for every drawable entity.
func (s *Scene) Visuals(fn func(model string, pose physics.Pose)) {
	q := generic.NewFilter2[physics.Pose, Visual]().Query(&s.World)
	for q.Next() {
		pose, vis := q.Get()
		fn(vis.Model, *pose)
	}
}

// Islands calls fn for every island.
func (s *Scene) Islands(fn func(isl Island, pose physics.Pose)) {
	q := generic.NewFilter2[physics.Pose, Island]().Query(&s.World)
	for q.Next() {
		pose, isl := q.Get()
		fn(*isl, *pose)
	}
}

func (s *Scene) follow() {
	p := s.poses.Get(s.player).Position
	s.Camera = Camera{Position: p.Add(CameraOffset), Target: p}
}

func vec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}
