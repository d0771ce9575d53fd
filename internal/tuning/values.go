package tuning

import (
	"fmt"
	"math"
)

// Color is a linear RGB triple, each channel in [0,1].
type Color [3]float32

// Values holds the physics and lighting tunables edited from the debug panel.
// It is a plain value; copying it snapshots the configuration.
type Values struct {
	DragC         float32 `json:"drag_c"`
	AvgBoatHeight float32 `json:"avg_boat_height"`
	FloatingC     float32 `json:"floating_c"`
	DragAngC      float32 `json:"drag_ang_c"`
	LightDirColor Color   `json:"light_dir_color"`
	LightAmbColor Color   `json:"light_amb_color"`
	LightDirLum   float32 `json:"light_dir_lum"`
	LightAmbLum   float32 `json:"light_amb_lum"`
}

func Default() Values {
	return Values{
		DragC:         0.1,
		AvgBoatHeight: 0.5,
		FloatingC:     40,
		DragAngC:      0.8,
		LightDirColor: Color{1.0, 0.95, 0.85},
		LightAmbColor: Color{0.55, 0.68, 0.9},
		LightDirLum:   0.8,
		LightAmbLum:   0.35,
	}
}

// MaxBuoyancy is the largest upward force the water can apply to a body.
func (v Values) MaxBuoyancy() float32 {
	return v.AvgBoatHeight * v.FloatingC
}

func (v Values) Validate() error {
	for _, f := range Scalars() {
		x := *f.Field(&v)
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return fmt.Errorf("%s: not a finite number", f.Key)
		}
		if x < 0 {
			return fmt.Errorf("%s must be >= 0, got %g", f.Key, x)
		}
	}
	for _, c := range Colors() {
		for i, ch := range *c.Field(&v) {
			if ch < 0 || ch > 1 {
				return fmt.Errorf("%s[%d] must be within [0,1], got %g", c.Key, i, ch)
			}
		}
	}
	return nil
}

// Clamped returns a copy with every field pulled into its UI range.
func (v Values) Clamped() Values {
	out := v
	for _, f := range Scalars() {
		p := f.Field(&out)
		*p = f.Clamp(*p)
	}
	for _, c := range Colors() {
		p := c.Field(&out)
		for i := range p {
			p[i] = clamp(p[i], 0, 1)
		}
	}
	return out
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
