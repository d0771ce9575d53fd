package world

import "sort"

// Phase orders systems within one frame.
type Phase int

const (
	PhaseInput     Phase = iota // steering impulses
	PhaseForces                 // buoyancy, drag
	PhasePhysics                // integrate, move colliders
	PhaseCollision              // sensor contact events
	PhaseDocking                // dock state machine
	PhaseCamera                 // follow camera
)

// System is one unit of per-frame work.
type System interface {
	Phase() Phase
	Update(dt float32)
}

// Runner executes systems in phase order. Systems sharing a phase keep their
// registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{systems: make([]System, 0, 8)}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner) Tick(dt float32) {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
	for _, s := range r.systems {
		s.Update(dt)
	}
}
