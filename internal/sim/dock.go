package sim

import "fmt"

// Horizontal speeds that gate docking. A boat docks below DockEnterSpeed and
// only leaves once it is faster than DockLeaveSpeed.
const (
	DockEnterSpeed float32 = 0.5
	DockLeaveSpeed float32 = 1.5
)

type DockPhase int

const (
	TooFar DockPhase = iota
	CloseTo
	DockedTo
)

func (p DockPhase) String() string {
	switch p {
	case TooFar:
		return "too_far"
	case CloseTo:
		return "close_to"
	case DockedTo:
		return "docked_to"
	}
	return fmt.Sprintf("dock_phase(%d)", int(p))
}

// DockState is the docking status of one boat. Target is the sensor region
// the boat is engaged with and is empty in TooFar.
type DockState struct {
	Phase  DockPhase
	Target string
}

func (s DockState) String() string {
	if s.Phase == TooFar {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s(%s)", s.Phase, s.Target)
}

// DockSignal is what the caller should do with the dock UI after a transition.
type DockSignal int

const (
	SignalNone DockSignal = iota
	SignalShow
	SignalHide
)

// Dock drives boat docking from sensor contacts and horizontal speed.
type Dock struct {
	state DockState
}

func (d *Dock) State() DockState {
	return d.state
}

// Enter handles the start of a contact with a sensor region. While already
// engaged with a region, contacts with other regions are ignored.
func (d *Dock) Enter(region string) DockSignal {
	if d.state.Phase != TooFar {
		return SignalNone
	}
	d.state = DockState{Phase: CloseTo, Target: region}
	return SignalNone
}

// Leave handles the end of a contact. Leaving the engaged region resets to
// TooFar and hides the dock UI if it was showing.
func (d *Dock) Leave(region string) DockSignal {
	if d.state.Phase == TooFar || d.state.Target != region {
		return SignalNone
	}
	wasDocked := d.state.Phase == DockedTo
	d.state = DockState{}
	if wasDocked {
		return SignalHide
	}
	return SignalNone
}

// Update applies the speed thresholds for one frame.
func (d *Dock) Update(horizontalSpeed float32) DockSignal {
	switch d.state.Phase {
	case CloseTo:
		if horizontalSpeed < DockEnterSpeed {
			d.state.Phase = DockedTo
			return SignalShow
		}
	case DockedTo:
		if horizontalSpeed > DockLeaveSpeed {
			d.state.Phase = CloseTo
			return SignalHide
		}
	}
	return SignalNone
}
