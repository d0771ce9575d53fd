package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	phase Phase
	name  string
	log   *[]string
}

func (r recordSystem) Phase() Phase { return r.phase }

func (r recordSystem) Update(float32) { *r.log = append(*r.log, r.name) }

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var got []string
	r := NewRunner()
	r.Register(recordSystem{phase: PhaseCamera, name: "camera", log: &got})
	r.Register(recordSystem{phase: PhaseInput, name: "input-a", log: &got})
	r.Register(recordSystem{phase: PhaseDocking, name: "dock", log: &got})
	r.Register(recordSystem{phase: PhaseInput, name: "input-b", log: &got})

	r.Tick(0.016)
	assert.Equal(t, []string{"input-a", "input-b", "dock", "camera"}, got)
}

func TestBusFlushRoutesByType(t *testing.T) {
	b := NewBus()
	var order []string
	Subscribe(b, func(ev DockShown) { order = append(order, "shown:"+ev.Island) })
	Subscribe(b, func(ev DockHidden) { order = append(order, "hidden:"+ev.Island) })

	Emit(b, DockShown{Island: "a"})
	Emit(b, DockHidden{Island: "a"})
	Emit(b, ContactStarted{Sensor: "ignored"})
	require.Equal(t, 3, b.Pending())
	assert.Empty(t, order)

	b.Flush()
	assert.Equal(t, []string{"shown:a", "hidden:a"}, order)
	assert.Equal(t, 0, b.Pending())
}

func TestBusHandlerEmitsForNextFlush(t *testing.T) {
	b := NewBus()
	var hidden int
	Subscribe(b, func(DockShown) { Emit(b, DockHidden{}) })
	Subscribe(b, func(DockHidden) { hidden++ })

	Emit(b, DockShown{})
	b.Flush()
	assert.Equal(t, 0, hidden)
	b.Flush()
	assert.Equal(t, 1, hidden)
}
