package sim

import (
	"math/rand/v2"
	"testing"
)

func TestDockEnterThenSlowDocks(t *testing.T) {
	var d Dock
	if sig := d.Enter("north"); sig != SignalNone {
		t.Fatalf("expected no UI signal on enter, got %v", sig)
	}
	if got := d.State(); got.Phase != CloseTo || got.Target != "north" {
		t.Fatalf("expected close_to(north), got %s", got)
	}

	if sig := d.Update(1.0); sig != SignalNone {
		t.Fatalf("expected to stay close_to at speed 1.0, got %v", sig)
	}
	if sig := d.Update(0.2); sig != SignalShow {
		t.Fatalf("expected show signal when docking, got %v", sig)
	}
	if got := d.State(); got.Phase != DockedTo || got.Target != "north" {
		t.Fatalf("expected docked_to(north), got %s", got)
	}
}

func TestDockLeaveSpeedUndocks(t *testing.T) {
	var d Dock
	d.Enter("north")
	d.Update(0)
	if sig := d.Update(1.0); sig != SignalNone {
		t.Fatalf("expected to stay docked inside hysteresis band, got %v", sig)
	}
	if sig := d.Update(2.0); sig != SignalHide {
		t.Fatalf("expected hide signal when undocking, got %v", sig)
	}
	if got := d.State(); got.Phase != CloseTo || got.Target != "north" {
		t.Fatalf("expected close_to(north), got %s", got)
	}
}

func TestDockContactEndResetsAndHides(t *testing.T) {
	var d Dock
	d.Enter("north")
	d.Update(0)
	if sig := d.Leave("north"); sig != SignalHide {
		t.Fatalf("expected hide signal when leaving while docked, got %v", sig)
	}
	if got := d.State(); got.Phase != TooFar || got.Target != "" {
		t.Fatalf("expected too_far, got %s", got)
	}

	d.Enter("north")
	if sig := d.Leave("north"); sig != SignalNone {
		t.Fatalf("expected no signal leaving while only close, got %v", sig)
	}
}

func TestDockSingleTarget(t *testing.T) {
	var d Dock
	d.Enter("north")
	d.Enter("south")
	if got := d.State(); got.Target != "north" {
		t.Fatalf("expected first region to stay engaged, got %s", got)
	}
	d.Leave("south")
	if got := d.State(); got.Phase != CloseTo || got.Target != "north" {
		t.Fatalf("expected unrelated leave to be ignored, got %s", got)
	}
}

func TestDockTooFarIgnoresSpeed(t *testing.T) {
	var d Dock
	if sig := d.Update(0); sig != SignalNone || d.State().Phase != TooFar {
		t.Fatalf("expected too_far to ignore speed, got %s", d.State())
	}
}

func TestDockHysteresisNoChatter(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for run := 0; run < 200; run++ {
		var d Dock
		d.Enter("isle")
		for step := 0; step < 500; step++ {
			speed := float32(rng.Float64() * 3)
			before := d.State().Phase
			d.Update(speed)
			after := d.State().Phase
			if before == DockedTo && after == CloseTo && speed <= DockLeaveSpeed {
				t.Fatalf("undocked at speed %g <= %g", speed, DockLeaveSpeed)
			}
			if before == CloseTo && after == DockedTo && speed >= DockEnterSpeed {
				t.Fatalf("docked at speed %g >= %g", speed, DockEnterSpeed)
			}
		}
	}
}

func TestDockStateString(t *testing.T) {
	var d Dock
	if d.State().String() != "too_far" {
		t.Fatalf("unexpected string %q", d.State().String())
	}
	d.Enter("isle")
	if d.State().String() != "close_to(isle)" {
		t.Fatalf("unexpected string %q", d.State().String())
	}
}
