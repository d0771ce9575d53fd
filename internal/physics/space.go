package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
)

// Collider tags.
const (
	TagSensor = "sensor"
	TagSolid  = "solid"
	TagBody   = "body"
)

// Collider is an axis-aligned box on the water plane. The Y axis of the
// world is ignored; resolv's Y is the world Z.
type Collider struct {
	Name  string
	HalfX float32
	HalfZ float32

	obj *resolv.Object
}

// Center returns the collider center in world XZ (Y is zero).
func (c *Collider) Center(sp *Space) mgl32.Vec3 {
	x := float32(c.obj.X) + c.HalfX + sp.minX
	z := float32(c.obj.Y) + c.HalfZ + sp.minZ
	return mgl32.Vec3{x, 0, z}
}

// Space is the collision world for boats, island solids and dock sensors.
type Space struct {
	space *resolv.Space
	minX  float32
	minZ  float32
}

// NewSpace covers the rectangle starting at (minX, minZ) with the given size,
// bucketed into square cells.
func NewSpace(minX, minZ, width, depth float32, cell int) *Space {
	if cell < 1 {
		cell = 1
	}
	return &Space{
		space: resolv.NewSpace(int(width), int(depth), cell, cell),
		minX:  minX,
		minZ:  minZ,
	}
}

func (sp *Space) AddSensor(name string, center mgl32.Vec3, halfX, halfZ float32) *Collider {
	return sp.add(name, center, halfX, halfZ, TagSensor)
}

func (sp *Space) AddSolid(name string, center mgl32.Vec3, halfX, halfZ float32) *Collider {
	return sp.add(name, center, halfX, halfZ, TagSolid)
}

func (sp *Space) AddBody(name string, center mgl32.Vec3, halfX, halfZ float32) *Collider {
	return sp.add(name, center, halfX, halfZ, TagBody)
}

func (sp *Space) add(name string, center mgl32.Vec3, halfX, halfZ float32, tag string) *Collider {
	x, y := sp.local(center, halfX, halfZ)
	obj := resolv.NewObject(x, y, float64(2*halfX), float64(2*halfZ), tag)
	c := &Collider{Name: name, HalfX: halfX, HalfZ: halfZ, obj: obj}
	obj.Data = c
	sp.space.Add(obj)
	return c
}

// Move places c at center.
func (sp *Space) Move(c *Collider, center mgl32.Vec3) {
	c.obj.X, c.obj.Y = sp.local(center, c.HalfX, c.HalfZ)
	c.obj.Update()
}

// Blocked reports whether moving c by (dx, dz) would push it into a solid or
// deeper into one it already overlaps. Moves that back out of an overlap
// are allowed, so a hull placed inside a solid can leave it.
func (sp *Space) Blocked(c *Collider, dx, dz float32) bool {
	mx, mz := float64(dx), float64(dz)
	for _, s := range sp.overlaps(c, mx, mz, TagSolid) {
		if separation(c.obj, mx, mz, s.obj) < separation(c.obj, 0, 0, s.obj) {
			return true
		}
	}
	return false
}

// Sensors returns the names of the sensors c currently overlaps, sorted.
func (sp *Space) Sensors(c *Collider) []string {
	hits := sp.overlaps(c, 0, 0, TagSensor)
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	sort.Strings(names)
	return names
}

// overlaps runs resolv's cell broadphase and confirms each candidate with a
// box test.
func (sp *Space) overlaps(c *Collider, dx, dy float64, tag string) []*Collider {
	col := c.obj.Check(dx, dy, tag)
	if col == nil {
		return nil
	}
	var out []*Collider
	a := c.obj
	for _, b := range col.Objects {
		if a.X+dx < b.X+b.W && b.X < a.X+dx+a.W && a.Y+dy < b.Y+b.H && b.Y < a.Y+dy+a.H {
			if other, ok := b.Data.(*Collider); ok {
				out = append(out, other)
			}
		}
	}
	return out
}

// separation is the distance between the centers of a (offset by dx, dy)
// and b, per axis in units of their combined half extents. The boxes overlap
// while it is below one.
func separation(a *resolv.Object, dx, dy float64, b *resolv.Object) float64 {
	sx := math.Abs(a.X+dx+a.W/2-b.X-b.W/2) / ((a.W + b.W) / 2)
	sy := math.Abs(a.Y+dy+a.H/2-b.Y-b.H/2) / ((a.H + b.H) / 2)
	return math.Max(sx, sy)
}

func (sp *Space) local(center mgl32.Vec3, halfX, halfZ float32) (float64, float64) {
	return float64(center.X() - halfX - sp.minX), float64(center.Z() - halfZ - sp.minZ)
}

// Contacts turns per-frame overlap sets into start and end events.
type Contacts struct {
	current map[string]struct{}
}

// Diff records the sensors touched this frame and returns which contacts
// began and which ended, each sorted.
func (ct *Contacts) Diff(touching []string) (started, ended []string) {
	next := make(map[string]struct{}, len(touching))
	for _, name := range touching {
		next[name] = struct{}{}
		if _, ok := ct.current[name]; !ok {
			started = append(started, name)
		}
	}
	for name := range ct.current {
		if _, ok := next[name]; !ok {
			ended = append(ended, name)
		}
	}
	sort.Strings(started)
	sort.Strings(ended)
	ct.current = next
	return started, ended
}
