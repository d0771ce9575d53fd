package world

import (
	"github.com/appengine-ltd/seilespill/internal/physics"
	"github.com/appengine-ltd/seilespill/internal/sim"
)

// Player marks the boat that reads keyboard steering.
type Player struct{}

// Floating marks bodies the water acts on.
type Floating struct{}

// Hull links a body to its collider on the water plane.
type Hull struct {
	Collider *physics.Collider
}

// Docking carries a boat's dock state machine.
type Docking struct {
	sim.Dock
}

// Visual names the model drawn at an entity's pose.
type Visual struct {
	Model string
}

// Island is a named island with its dock sensor.
type Island struct {
	Name   string
	Sensor *physics.Collider
	Solid  *physics.Collider
}

// Model names used by Visual.
const (
	ModelBoat = "boat"
	ModelMap  = "map"
)
