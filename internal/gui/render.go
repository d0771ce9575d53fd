package gui

import (
	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/gui/theme"
	"github.com/appengine-ltd/seilespill/internal/physics"
	"github.com/appengine-ltd/seilespill/internal/sim"
	"github.com/appengine-ltd/seilespill/internal/tuning"
	"github.com/appengine-ltd/seilespill/internal/world"
)

const cameraFovy = 45

// sunDir points from the sun toward the scene.
var sunDir = mgl32.Vec3{-0.4, -1, -0.3}.Normalize()

// sceneRenderer owns the GPU models for one loaded bundle.
type sceneRenderer struct {
	log    *zap.Logger
	models map[string]rl.Model
}

func newSceneRenderer(log *zap.Logger) *sceneRenderer {
	return &sceneRenderer{log: log, models: map[string]rl.Model{}}
}

// load uploads the bundle's models. Must run on the window thread.
func (r *sceneRenderer) load(b *assets.Bundle) {
	for name, m := range map[string]*assets.Model{world.ModelBoat: b.Boat, world.ModelMap: b.Map} {
		model := rl.LoadModel(m.Path)
		if model.MeshCount == 0 {
			r.log.Warn("model has no meshes, drawing placeholder", zap.String("path", m.Path))
		}
		r.models[name] = model
		r.log.Debug("model uploaded", zap.String("model", name), zap.Int32("meshes", model.MeshCount))
	}
}

func (r *sceneRenderer) unload() {
	for name, m := range r.models {
		if m.MeshCount > 0 {
			rl.UnloadModel(m)
		}
		delete(r.models, name)
	}
}

func (r *sceneRenderer) draw(s *world.Scene, v tuning.Values, showSensors bool) {
	tint := lightTint(v)
	rl.BeginMode3D(camera3D(s.Camera))

	b := s.Layout.Bounds
	rl.DrawPlane(
		rl.NewVector3(b.MinX+b.Width/2, sim.WaterLevel, b.MinZ+b.Depth/2),
		rl.NewVector2(b.Width, b.Depth),
		modulate(theme.Sea, tint),
	)

	s.Visuals(func(name string, pose physics.Pose) {
		pos := toVector3(pose.Position)
		m, ok := r.models[name]
		if !ok || m.MeshCount == 0 {
			if name == world.ModelBoat {
				rl.DrawCube(pos, 1.2, 0.6, 2.8, modulate(theme.AccentBuoy, tint))
			}
			return
		}
		m.Transform = toMatrix(pose.Rotation.Mat4())
		rl.DrawModel(m, pos, 1, tint)
	})

	if showSensors {
		target := s.DockState().Target
		s.Islands(func(isl world.Island, _ physics.Pose) {
			if isl.Solid != nil {
				drawCollider(s.Space, isl.Solid, theme.TextMuted)
			}
			clr := theme.AccentFoam
			if isl.Name == target {
				clr = theme.AccentBuoy
			}
			drawCollider(s.Space, isl.Sensor, clr)
		})
	}
	rl.EndMode3D()
}

func drawCollider(sp *physics.Space, c *physics.Collider, clr rl.Color) {
	center := c.Center(sp)
	rl.DrawCubeWires(toVector3(center), 2*c.HalfX, 1, 2*c.HalfZ, clr)
}

func camera3D(c world.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cameraFovy,
		Projection: rl.CameraPerspective,
	}
}

// lightTint folds the ambient and sun tunables into one model tint. Water
// faces up, so the sun contributes by its elevation.
func lightTint(v tuning.Values) rl.Color {
	facing := -sunDir.Dot(mgl32.Vec3{0, 1, 0})
	if facing < 0 {
		facing = 0
	}
	var c tuning.Color
	for i := range c {
		c[i] = v.LightAmbColor[i]*v.LightAmbLum + v.LightDirColor[i]*v.LightDirLum*facing
	}
	return colorOf(c, 1)
}

// colorOf converts a unit RGB triple scaled by lum to an opaque color.
func colorOf(c tuning.Color, lum float32) rl.Color {
	return rl.NewColor(unitByte(c[0]*lum), unitByte(c[1]*lum), unitByte(c[2]*lum), 255)
}

func modulate(base, tint rl.Color) rl.Color {
	return rl.NewColor(
		uint8(uint16(base.R)*uint16(tint.R)/255),
		uint8(uint16(base.G)*uint16(tint.G)/255),
		uint8(uint16(base.B)*uint16(tint.B)/255),
		base.A,
	)
}

func unitByte(x float32) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// toMatrix copies a column-major mgl32 matrix into raylib's layout, which
// is column-major as well.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
