package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/seilespill/internal/sim"
)

// readSteer samples the arrow keys. Held keys steer every frame they are
// down.
func readSteer() sim.Steer {
	return sim.Steer{
		Left:   rl.IsKeyDown(rl.KeyLeft),
		Right:  rl.IsKeyDown(rl.KeyRight),
		Ahead:  rl.IsKeyDown(rl.KeyUp),
		Astern: rl.IsKeyDown(rl.KeyDown),
	}
}

type hotkeys struct {
	nextCard      bool
	toggleSensors bool
	togglePanel   bool
	save          bool
}

func readHotkeys() hotkeys {
	return hotkeys{
		nextCard:      rl.IsKeyPressed(rl.KeyTab),
		toggleSensors: rl.IsKeyPressed(rl.KeyF2),
		togglePanel:   rl.IsKeyPressed(rl.KeyF1),
		// Accept either key order: Ctrl then S, or S then Ctrl.
		save: (ctrlDown() && rl.IsKeyPressed(rl.KeyS)) ||
			(rl.IsKeyDown(rl.KeyS) && (rl.IsKeyPressed(rl.KeyLeftControl) || rl.IsKeyPressed(rl.KeyRightControl))),
	}
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

// pointer is one frame of mouse state.
type pointer struct {
	pos     rl.Vector2
	down    bool
	pressed bool
}

func readPointer() pointer {
	return pointer{
		pos:     rl.GetMousePosition(),
		down:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
	}
}
